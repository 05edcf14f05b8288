package lexer

// Options holds a lexer's mutable configuration. RequireNewdecls is
// inherited by lexers created for #include'd buffers (spec.md §6): pass the
// parent's current value back in via the RequireNewdecls option when
// constructing the child.
type Options struct {
	TraceComments   bool
	RequireNewdecls bool
}

// Option configures a new Lexer, in the same functional-option style as the
// teacher's IsSeparator/IsIdentifier/ErrorHandler options.
type Option func(*Options)

// TraceComments controls whether front/tail comment blocks are attributed
// and reported via Preprocessor.AddComment. When false, comments are
// consumed silently (spec.md §4.6).
func TraceComments(enabled bool) Option {
	return func(o *Options) { o.TraceComments = enabled }
}

// RequireNewdecls sets the initial value of the newdecls requirement,
// later toggled at runtime by "#pragma newdecls required|optional".
func RequireNewdecls(enabled bool) Option {
	return func(o *Options) { o.RequireNewdecls = enabled }
}
