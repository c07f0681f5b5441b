package tagmatch

// A Jenny is a tagmatch file generator.
//
// Each Jenny works with exactly one type of input to its code generation, as
// indicated by type parameter. tagmatch follows the codejen convention of
// naming these type parameters "Input" as an indicator for humans that a
// particular type parameter is used in this way.
//
// Each Jenny takes one Input and produces zero, one, or many output files.
// Go's generic system does not allow expression of the abstraction over
// individual kinds of Jennies as part of the Jenny interface itself, so a
// Jenny must also implement [OneToOne] or [OneToMany] to be added to a
// [JennyList].
type Jenny[Input any] interface {
	NamedJenny
}

// NamedJenny is the non-generic part of every Jenny: it reports its name.
type NamedJenny interface {
	// JennyName returns the name of the generator.
	JennyName() string
}
