package jsonrivulet

import "testing"

func TestBlockCommentBasic(t *testing.T) {
	tok := New([]byte(`[1, /* a block\ncomment */ 2]`), true, WithCommentHandling(CommentAllow))
	if !tok.Read() || tok.TokenType() != ArrayStart {
		t.Fatal("expected ArrayStart")
	}
	if !tok.Read() || tok.TokenType() != Number {
		t.Fatal("expected Number")
	}
	if !tok.Read() || tok.TokenType() != Comment {
		t.Fatalf("expected Comment, got %v (err=%v)", tok.TokenType(), tok.Err())
	}
	if string(tok.Token()) != ` a block\ncomment ` {
		t.Fatalf("Token() = %q", tok.Token())
	}
}

func TestBlockCommentCountsEmbeddedNewlines(t *testing.T) {
	doc := "[1, /* line1\nline2\nline3 */ 2]"
	tok := New([]byte(doc), true, WithCommentHandling(CommentAllow))
	if !tok.Read() || tok.TokenType() != ArrayStart {
		t.Fatal("expected ArrayStart")
	}
	if !tok.Read() || tok.TokenType() != Number {
		t.Fatal("expected Number")
	}
	if !tok.Read() || tok.TokenType() != Comment {
		t.Fatalf("expected Comment, got %v (err=%v)", tok.TokenType(), tok.Err())
	}
	if !tok.Read() || tok.TokenType() != Number {
		t.Fatalf("expected Number after the comment, got %v (err=%v)", tok.TokenType(), tok.Err())
	}
	if tok.line != 2 {
		t.Fatalf("line = %d, want 2 (two newlines inside the comment)", tok.line)
	}
}

func TestBlockCommentUnterminatedOnFinalBlock(t *testing.T) {
	tok := New([]byte(`/* never closed`), true, WithCommentHandling(CommentAllow))
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrEndOfCommentNotFound {
		t.Fatalf("expected ErrEndOfCommentNotFound, got %v", tok.Err())
	}
}

func TestBlockCommentUnterminatedNonFinalNeedsMore(t *testing.T) {
	tok := New([]byte(`/* not yet closed`), false, WithCommentHandling(CommentAllow))
	if tok.Read() {
		t.Fatal("expected NeedMore")
	}
	if tok.HasError() {
		t.Fatalf("NeedMore must not set an error, got %v", tok.Err())
	}
}

func TestInvalidCharacterAfterSlash(t *testing.T) {
	tok := New([]byte(`/x`), true, WithCommentHandling(CommentAllow))
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrInvalidCharacterAtStartOfComment {
		t.Fatalf("expected ErrInvalidCharacterAtStartOfComment, got %v", tok.Err())
	}
}

func TestLoneSlashAtEndOfDataIsAnError(t *testing.T) {
	tok := New([]byte(`/`), true, WithCommentHandling(CommentAllow))
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrUnexpectedEndOfDataWhileReadingComment {
		t.Fatalf("expected ErrUnexpectedEndOfDataWhileReadingComment, got %v", tok.Err())
	}
}
