package ir

type CommentKind uint8

const (
	// CommentLine is an ordinary `// text` comment.
	CommentLine CommentKind = iota
	// CommentDoc is a `/// text` documentation comment.
	CommentDoc
	// CommentMark is a `// MARK:` navigation comment.
	CommentMark
)

// Comment is a rendered comment block. Text may span multiple lines; the
// renderer applies the marker prefix to every line independently, including
// blank ones.
type Comment struct {
	Kind CommentKind
	Text string
	// SectionBreak selects the `// MARK: -` form. Only meaningful for
	// CommentMark.
	SectionBreak bool
}
