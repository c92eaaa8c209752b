package grammar

// CommentStyle is the comment convention editors use to toggle comments.
// An empty string means the delimiter does not exist in the dialect.
type CommentStyle struct {
	LinePrefix                  string
	BlockPrefix                 string
	BlockSuffix                 string
	CommentedBlockCommentPrefix string
	CommentedBlockCommentSuffix string
}

// HasBlockComment reports whether the dialect has a block comment form.
func (c CommentStyle) HasBlockComment() bool {
	return c.BlockPrefix != "" && c.BlockSuffix != ""
}

// CommentStyleFor returns the comment convention of d. Both dialects only
// know line comments starting with a semicolon.
func CommentStyleFor(d Dialect) CommentStyle {
	return CommentStyle{LinePrefix: ";"}
}
