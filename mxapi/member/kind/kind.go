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

package kind

import (
	"fmt"
	"strings"
)

// Kind classifies a resolved member of a type.
//
// # Overview
//
// Kind is a small enumerated type that names the category a member resolver
// assigned to one entry of a type's member table. Every resolved member is
// exactly one of a method, a field, or a constructor; consumers branch on
// Kind to decide how the member may be used (invoked, read and written, or
// instantiated).
//
// Kind is intentionally minimal and resolver-agnostic: it does not describe
// where a member came from (declared directly or promoted through an
// embedded type), its visibility, or its signature. Those aspects are
// carried by the member record itself; Kind only selects the broad class of
// behavior.
//
// # Values
//
// The following kinds are defined:
//
//   - Method      — a callable bound to a receiver type.
//   - Field       — an addressable data member.
//   - Constructor — a factory producing instances of the owner type.
//   - Unknown     — classification is absent or failed.
//
// Resolvers MAY attach additional, implementation-specific metadata to a
// member (such as promotion depth or an index path), but that metadata is
// configured and transported separately from Kind.
//
// # Contract
//
//   - Consumers MUST treat Kind as a stable, public API; adding new values
//     is allowed, but existing values MUST NOT change their semantics in
//     breaking ways.
//   - Kind values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Kind SHOULD be assigned once, when a member is resolved, and treated
//     as immutable afterwards.
type Kind int

const (
	// Method classifies a callable member bound to a receiver type.
	//
	// # Semantics
	//
	// A Method entry represents an operation that is invoked against a
	// target value of the owner type (or a pointer to it). The member
	// carries the full signature, and invocation MUST supply a compatible
	// receiver plus the declared arguments. "Callable" covers both:
	//
	//   - Methods declared directly on the owner type.
	//   - Methods promoted into the owner through embedded types.
	//
	// Recommended usage:
	//
	//   - Dynamic dispatch by name, where the operation to run is chosen
	//     at runtime from configuration or external input.
	//   - Overload-style selection, where several candidates share a name
	//     and the argument types pick the winner.
	//
	// Implementation notes:
	//
	//   - Resolvers SHOULD record, for promoted methods, enough information
	//     to reach the embedded receiver (for example a traversal depth),
	//     so invokers can address the right sub-value.
	Method Kind = iota

	// Field classifies an addressable data member.
	//
	// # Semantics
	//
	// A Field entry represents state held by the owner type. Consumers read
	// it with a get operation and, when the target is addressable, update it
	// with a set operation. As with methods, a field MAY be declared
	// directly on the owner or promoted from an embedded type.
	//
	// A Field is never invoked. Implementations MUST reject attempts to
	// call a Field entry as if it were a Method.
	//
	// Recommended usage:
	//
	//   - Data binding and mapping layers that move values between a typed
	//     struct and an external representation.
	//   - Property-style access where field names arrive as strings.
	//
	// Implementation notes:
	//
	//   - Promoted fields require an index path through the embedding chain;
	//     resolvers SHOULD precompute it so access stays cheap.
	//   - Writes to unexported or unaddressable fields MUST fail with an
	//     error rather than panic.
	Field

	// Constructor classifies a factory that produces instances of the
	// owner type.
	//
	// # Semantics
	//
	// A Constructor entry represents the way new values of the owner type
	// come into existence. Two flavors exist:
	//
	//   - The implicit constructor, which yields the zero value of the
	//     owner type and accepts no arguments.
	//   - A registered factory function, whose parameters become the
	//     constructor's arguments and whose first result is the new
	//     instance.
	//
	// A factory MAY declare a trailing error result; when it does, a
	// non-nil error from the factory MUST surface to the caller as a
	// failed construction, not as a panic.
	//
	// Recommended usage:
	//
	//   - Instantiating types selected by name from configuration.
	//   - Wiring layers that build object graphs from declarative input.
	Constructor

	// Unknown marks the absence of a classification.
	//
	// # Semantics
	//
	// Unknown is not a member category; it is the value consumers see when
	// classification never happened or failed. In practice this means:
	//
	//   - A zero-initialized record that bypassed resolution MAY carry it
	//     only if the producer deliberately assigns it; resolvers MUST NOT
	//     emit Unknown for members they successfully resolved.
	//   - Parsing a malformed token yields Unknown together with an error.
	//
	// Consumers encountering Unknown SHOULD treat the member as unusable
	// and report a diagnostic rather than guess a category.
	Unknown
)

// String returns a human-readable representation of the Kind value.
//
// # Semantics
//
// String implements fmt.Stringer and provides short, stable identifiers
// suitable for logging, metrics labels, configuration dumps, and debugging.
// For all defined enum values, the returned strings are:
//
//   - Method      -> "Method"
//   - Field       -> "Field"
//   - Constructor -> "Constructor"
//   - Unknown     -> "Unknown"
//
// For out-of-range values, String returns a diagnostic form "Unknown(<n>)",
// where <n> is the underlying integer value. String MUST NOT panic, so that
// corrupted or unexpected values can still be surfaced safely in logs and
// diagnostics.
//
// # Contract
//
//   - The mapping from known Kind values to strings MUST remain stable;
//     changing the spelling or casing is a breaking change for systems that
//     persist or parse these strings.
//   - Callers MAY use the returned string for display or logging, but they
//     SHOULD NOT rely on it as a primary configuration format unless this
//     is explicitly documented and properly versioned.
func (k Kind) String() string {
	switch k {
	case Method:
		return "Method"
	case Field:
		return "Field"
	case Constructor:
		return "Constructor"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Parse parses a textual representation of a Kind.
//
// # Overview
//
// Parse converts a string token into the corresponding Kind value. It
// accepts the same canonical tokens that are produced by Kind.String() for
// known values, with case-insensitive matching.
//
// Accepted (case-insensitive) inputs:
//
//   - "Method"      -> Method
//   - "Field"       -> Field
//   - "Constructor" -> Constructor
//   - "Unknown"     -> Unknown
//
// Any other input results in a non-nil error.
//
// # Contract
//
//   - s MAY contain surrounding whitespace; it will be trimmed.
//   - On success, Parse returns a valid Kind and a nil error.
//   - On failure, Parse returns Unknown and a non-nil error; callers MUST
//     NOT rely on the returned Kind value in the error case.
//   - Parse MUST NOT panic for any input.
//
// # Usage
//
// Parse is suitable for parsing configuration values, environment
// variables, CLI flags, and other human-authored or external inputs. For
// hard-coded values that are expected to be valid, callers MAY prefer
// MustParse for brevity.
//
// Example:
//
//	kind, err := Parse("method")
//	if err != nil {
//	    // handle invalid configuration
//	}
//
//	_ = kind // Method
func Parse(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Unknown, fmt.Errorf("member: empty kind")
	}

	switch strings.ToUpper(trimmed) {
	case "METHOD":
		return Method, nil
	case "FIELD":
		return Field, nil
	case "CONSTRUCTOR":
		return Constructor, nil
	case "UNKNOWN":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("member: unknown kind %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// # Overview
//
// MustParse is a convenience helper for contexts where the input string is
// expected to be a valid Kind token and encountering an invalid value is
// considered a programmer error rather than a recoverable condition.
//
// It is intended for:
//
//   - Hard-coded configuration in Go code.
//   - Tests and examples.
//   - Initialization code where failing fast with a panic is acceptable.
//
// # Contract
//
//   - On valid input, MustParse returns the same value as Parse and MUST
//     NOT panic.
//   - On invalid input (including empty strings), MustParse panics with a
//     diagnostic message.
//   - Callers MUST NOT use MustParse on untrusted or user-supplied data;
//     they SHOULD use Parse instead and handle errors.
//
// # Usage
//
//	var defaultKind = MustParse("Method")
func MustParse(s string) Kind {
	kind, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return kind
}

// MarshalText encodes Kind as text.
//
// # Overview
//
// MarshalText implements encoding.TextMarshaler for Kind. It converts a
// Kind value into its canonical textual representation, suitable for use in
// textual encodings such as:
//
//   - encoding/json (when using ",string" struct tags or custom handling),
//   - encoding/xml,
//   - encoding/yaml (via third-party libraries),
//   - configuration files and human-readable dumps.
//
// For all defined Kind values, MarshalText returns the same tokens as
// Kind.String() for known values ("Method", "Field", "Constructor",
// "Unknown").
//
// # Contract
//
//   - On success, MarshalText returns a non-nil byte slice and a nil error.
//   - For out-of-range Kind values, MarshalText returns a non-nil error and
//     MUST NOT silently serialize an "Unknown(...)" form; this avoids
//     persisting potentially invalid states.
//   - MarshalText MUST NOT panic for any Kind value.
//
// # Usage
//
// MarshalText is typically called indirectly by encoding frameworks. Direct
// callers MAY use it when they need an explicit textual form:
//
//	b, err := kind.MarshalText()
//	if err != nil {
//	    // handle out-of-range kind
//	}
//	fmt.Println(string(b)) // e.g. "Method"
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Method, Field, Constructor, Unknown:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("member: cannot marshal unknown kind %d", k)
	}
}

// UnmarshalText decodes a Kind from its textual representation.
//
// # Overview
//
// UnmarshalText implements encoding.TextUnmarshaler for Kind. It accepts
// the same textual tokens as Parse, with case-insensitive matching:
//
//   - "Method"      -> Method
//   - "Field"       -> Field
//   - "Constructor" -> Constructor
//   - "Unknown"     -> Unknown
//
// Leading and trailing whitespace are ignored. Any other value results in a
// non-nil error, and the target is left unchanged.
//
// # Contract
//
//   - text MAY contain surrounding whitespace; it will be trimmed.
//   - On success, *k is set to the parsed value and a nil error is returned.
//   - On failure, *k MUST NOT be modified and a non-nil error is returned.
//   - UnmarshalText MUST NOT panic for any input.
//   - Callers MUST NOT assume that an empty text slice is valid; it is
//     treated as an error.
//
// # Usage
//
// UnmarshalText is typically invoked by encoding frameworks when decoding
// configuration or serialized state. It can also be used directly:
//
//	var kind Kind
//	if err := kind.UnmarshalText([]byte("field")); err != nil {
//	    // handle invalid input
//	}
//
//	_ = kind // Field
func (k *Kind) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("member: empty kind")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*k = value
	return nil
}
