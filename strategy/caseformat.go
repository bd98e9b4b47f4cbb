/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy

import (
	"reflect"
	"strings"

	"github.com/viant/tagly/format/text"

	"dirpx.dev/mirx/apis"
	uref "dirpx.dev/mirx/utils/reflect"
)

// NewCaseFormatStrategy creates the last-resort apis.Matcher: it re-renders
// the requested name in upper camel case and falls back to a case-insensitive
// scan. Active only when LooseNameMatch is enabled.
func NewCaseFormatStrategy() apis.Matcher {
	return caseFormatStrategy{}
}

// caseFormatStrategy tolerates snake_case, lowerCamel and kebab-case spellings
// of declared member names.
type caseFormatStrategy struct{}

// Ensure caseFormatStrategy implements apis.Matcher.
var _ apis.Matcher = (*caseFormatStrategy)(nil)

// TryMethod resolves a method whose declared name differs from the requested
// one only by case format.
func (caseFormatStrategy) TryMethod(t reflect.Type, name string, cfg apis.Config) (*apis.Member, bool) {
	if !cfg.LooseNameMatch || t == nil || name == "" {
		return nil, false
	}
	base, err := uref.Base(t, cfg)
	if err != nil {
		return nil, false
	}
	if m, ok := matchLoose(tableFor(base), apis.KindMethod, name); ok {
		return m, true
	}
	if tab := promotedFor(base, cfg); tab != nil {
		return matchLoose(tab, apis.KindMethod, name)
	}
	return nil, false
}

// TryField resolves a field whose declared name differs from the requested
// one only by case format.
func (caseFormatStrategy) TryField(t reflect.Type, name string, cfg apis.Config) (*apis.Member, bool) {
	if !cfg.LooseNameMatch || t == nil || name == "" {
		return nil, false
	}
	base, err := uref.Base(t, cfg)
	if err != nil {
		return nil, false
	}
	if m, ok := matchLoose(tableFor(base), apis.KindField, name); ok {
		return m, true
	}
	if tab := promotedFor(base, cfg); tab != nil {
		return matchLoose(tab, apis.KindField, name)
	}
	return nil, false
}

// matchLoose tries the upper-camel rendering of name first, then scans
// declaration order case-insensitively so ties resolve deterministically.
func matchLoose(tab *memberTable, kind apis.Kind, name string) (*apis.Member, bool) {
	members := tab.methods
	if kind == apis.KindField {
		members = tab.fields
	}
	if m, ok := members[upperCamel(name)]; ok {
		return m, true
	}
	for _, m := range tab.ordered {
		if m.Kind != kind {
			continue
		}
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return nil, false
}

// upperCamel renders name in Go's exported spelling: "user_name" -> "UserName".
func upperCamel(name string) string {
	from := text.DetectCaseFormat(name)
	if !from.IsDefined() || from == text.CaseFormatUpperCamel {
		return name
	}
	return from.Format(name, text.CaseFormatUpperCamel)
}
