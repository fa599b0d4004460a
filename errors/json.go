package errors

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Response is the flat, serializable representation of an Error.
// It is used for JSON and YAML output, for example in diagnostics written by
// command line front ends.
type Response struct {
	// Code is the symbolic name of the error code.
	Code string `json:"code" yaml:"code"`

	// Message is the human-readable error message.
	Message string `json:"message" yaml:"message"`

	// Category is the taxonomy group of the code.
	Category string `json:"category" yaml:"category"`
}

// ToResponse converts any error to a Response.
// Returns nil if err is nil.
//
// Errors without an Error in their chain are reported as
// CodeInvalidOperation with their own text as the message.
func ToResponse(err error) *Response {
	if err == nil {
		return nil
	}

	e, ok := findError(err)
	if !ok {
		e = NewWithMessage(CodeInvalidOperation, err.Error())
	}
	return e.response()
}

func (e Error) response() *Response {
	return &Response{
		Code:     e.Name(),
		Message:  e.Message(),
		Category: string(e.Code().Category()),
	}
}

// toError rebuilds an Error from its serialized form. Only a message equal to
// the code's default yields an inline error; an empty message stays extended.
func (r *Response) toError() (Error, error) {
	code, ok := ParseCode(r.Code)
	if !ok {
		return Error{}, fmt.Errorf("errors: unknown error code name %q", r.Code)
	}
	if r.Message == code.Message() {
		return New(code), nil
	}
	return NewWithMessage(code, r.Message), nil
}

// MarshalJSON implements json.Marshaler.
//
// Example:
//
//	err := errors.New(errors.CodeFileNotFound)
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"code":"FileNotFound","message":"File not found","category":"resource_access"}
func (e Error) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.response())
	if err != nil {
		return nil, fmt.Errorf("errors: marshal %s: %w", e.Name(), err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
// The category field is derived from the code and ignored on input.
func (e *Error) UnmarshalJSON(data []byte) error {
	var r Response
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("errors: unmarshal error response: %w", err)
	}
	decoded, err := r.toError()
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler from gopkg.in/yaml.v3.
func (e Error) MarshalYAML() (interface{}, error) {
	return e.response(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler from gopkg.in/yaml.v3.
func (e *Error) UnmarshalYAML(value *yaml.Node) error {
	var r Response
	if err := value.Decode(&r); err != nil {
		return fmt.Errorf("errors: unmarshal error response: %w", err)
	}
	decoded, err := r.toError()
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}
