package tagmatch

// OneToMany is a Jenny that accepts one input and produces 0 to N files.
type OneToMany[Input any] interface {
	Jenny[Input]

	// Generate takes an Input and generates many [File]s, or none (nil) if the j
	// was a no-op for the provided Input.
	Generate(Input) (Files, error)
}
