package domain

// ParameterSpec describes one string-valued parameter accepted by a tool.
type ParameterSpec struct {
	Name        string
	Kind        string
	Description string
	Enum        []string
	Default     string
}

// ToolDescriptor is one entry of the static tool catalog. Descriptors are
// built once at startup and never mutated.
type ToolDescriptor struct {
	Name        string
	Description string
	Parameters  []ParameterSpec
}

// Envelope is the uniform result wrapper for every invocation. Exactly one
// text content item; IsError marks failures that were caught at the
// dispatch boundary.
type Envelope struct {
	Text    string
	IsError bool
}

// FailureEnvelope wraps an error message into the failure shape.
func FailureEnvelope(text string) Envelope {
	return Envelope{Text: text, IsError: true}
}
