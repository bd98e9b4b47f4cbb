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

package typing

import (
	"reflect"
	"strings"
	"time"

	"github.com/viant/xreflect"

	"dirpx.dev/mirx/apis"
)

// genericBase returns a type name with its instantiation brackets removed:
// "List[main.User]" yields "List".
func genericBase(name string) string {
	if at := strings.IndexByte(name, '['); at > 0 {
		return name[:at]
	}
	return name
}

// instantiationArgs returns the raw argument tokens of an instantiated name,
// or nil for a non-generic name. Nested brackets and map types stay intact:
// "Pair[map[string]int,main.User]" yields ["map[string]int" "main.User"].
func instantiationArgs(name string) []string {
	open := strings.IndexByte(name, '[')
	if open <= 0 || !strings.HasSuffix(name, "]") {
		return nil
	}
	content := name[open+1 : len(name)-1]
	var (
		tokens []string
		depth  int
		start  int
	)
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				tokens = append(tokens, strings.TrimSpace(content[start:i]))
				start = i + 1
			}
		}
	}
	tokens = append(tokens, strings.TrimSpace(content[start:]))
	return tokens
}

// builtins resolve without any registry entry.
var builtins = map[string]reflect.Type{
	"bool":         reflect.TypeOf(true),
	"string":       reflect.TypeOf(""),
	"int":          reflect.TypeOf(0),
	"int8":         reflect.TypeOf(int8(0)),
	"int16":        reflect.TypeOf(int16(0)),
	"int32":        reflect.TypeOf(int32(0)),
	"int64":        reflect.TypeOf(int64(0)),
	"uint":         reflect.TypeOf(uint(0)),
	"uint8":        reflect.TypeOf(uint8(0)),
	"uint16":       reflect.TypeOf(uint16(0)),
	"uint32":       reflect.TypeOf(uint32(0)),
	"uint64":       reflect.TypeOf(uint64(0)),
	"uintptr":      reflect.TypeOf(uintptr(0)),
	"byte":         reflect.TypeOf(byte(0)),
	"rune":         reflect.TypeOf(rune(0)),
	"float32":      reflect.TypeOf(float32(0)),
	"float64":      reflect.TypeOf(float64(0)),
	"complex64":    reflect.TypeOf(complex64(0)),
	"complex128":   reflect.TypeOf(complex128(0)),
	"any":          reflect.TypeOf((*interface{})(nil)).Elem(),
	"interface {}": reflect.TypeOf((*interface{})(nil)).Elem(),
	"error":        reflect.TypeOf((*error)(nil)).Elem(),
	"time.Time":    reflect.TypeOf(time.Time{}),
}

// resolveToken turns one instantiation token into a live type, or nil when
// nothing can produce it. Tokens carry full import paths, which get cut down
// to the forms a registry name or a parsed expression can match.
func (r *resolver) resolveToken(token string) reflect.Type {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if t, ok := builtins[token]; ok {
		return t
	}
	if t := r.lookupName(token); t != nil {
		return t
	}
	expr := sanitizeToken(token)
	if t, ok := builtins[expr]; ok {
		return t
	}
	parsed, err := xreflect.Parse(expr, xreflect.WithTypeLookup(r.typeLookup))
	if err != nil {
		if r.cfg.Debug {
			r.log.Logf("mirx: cannot resolve type token %q: %v", token, err)
		}
		return nil
	}
	return parsed
}

// lookupName probes the registry with the token itself and its short forms.
func (r *resolver) lookupName(token string) reflect.Type {
	if r.reg == nil {
		return nil
	}
	for _, candidate := range nameForms(token) {
		if t, ok := r.reg.LookupName(candidate); ok {
			return t
		}
	}
	return nil
}

// typeLookup adapts the registry to the expression parser's identifier hook.
func (r *resolver) typeLookup(name string, _ ...xreflect.Option) (reflect.Type, error) {
	if t, ok := builtins[name]; ok {
		return t, nil
	}
	if t := r.lookupName(name); t != nil {
		return t, nil
	}
	return nil, errUnknownTypeName
}

// nameForms lists the lookup candidates of a qualified token, longest first:
// the token itself, the path-less form, the bare name.
func nameForms(token string) []string {
	forms := []string{token}
	if at := strings.LastIndexByte(token, '/'); at >= 0 {
		forms = append(forms, token[at+1:])
	}
	if at := strings.LastIndexByte(token, '.'); at >= 0 {
		forms = append(forms, token[at+1:])
	}
	return forms
}

// sanitizeToken strips import-path qualifiers so a token parses as a Go type
// expression: "[]a/b/pkg.User" becomes "[]pkg.User".
func sanitizeToken(token string) string {
	var out strings.Builder
	run := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c == '/':
			// Cut the identifier run accumulated so far, keeping only
			// what follows the path separator.
			out.WriteString(token[run:i])
			cut := out.String()
			if at := lastNonIdent(cut); at >= 0 {
				cut = cut[:at+1]
			} else {
				cut = ""
			}
			out.Reset()
			out.WriteString(cut)
			run = i + 1
		case isIdentByte(c) || c == '.':
			// part of the current identifier run
		default:
			out.WriteString(token[run : i+1])
			run = i + 1
		}
	}
	out.WriteString(token[run:])
	return out.String()
}

func lastNonIdent(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if !isIdentByte(s[i]) && s[i] != '.' {
			return i
		}
	}
	return -1
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// ParseType resolves a type expression against reg, classifying the outcome.
// Unresolvable expressions yield an Unresolved descriptor carrying the raw
// token instead of an error.
func ParseType(reg apis.Registry, expr string, cfg apis.Config) *apis.Descriptor {
	r := &resolver{cfg: cfg, reg: reg, log: defaultLog()}
	if t := r.resolveToken(expr); t != nil {
		return r.Describe(t, cfg)
	}
	return &apis.Descriptor{Name: strings.TrimSpace(expr), Kind: apis.Unresolved}
}
