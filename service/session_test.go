package service

import (
	"testing"

	"github.com/acadmap/consult-sdk/cons"
)

func TestSession_DisplayName_FallbackChain(t *testing.T) {
	cases := []struct {
		name string
		sess *Session
		want string
	}{
		{"profile name first", &Session{UserName: "홍길동", MetadataName: "메타이름", Phone: "010", Email: "a@b"}, "홍길동"},
		{"metadata name", &Session{MetadataName: "메타이름", Phone: "010", Email: "a@b"}, "메타이름"},
		{"phone", &Session{Phone: "01012345678", Email: "a@b"}, "01012345678"},
		{"email", &Session{Email: "parent@example.com"}, "parent@example.com"},
		{"all empty", &Session{}, cons.FallbackParentLabel},
		{"whitespace is empty", &Session{UserName: "   "}, cons.FallbackParentLabel},
		{"nil session", nil, cons.FallbackParentLabel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sess.DisplayName(); got != tc.want {
				t.Fatalf("DisplayName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSession_Valid(t *testing.T) {
	var nilSess *Session
	if nilSess.Valid() {
		t.Fatalf("nil session must be invalid")
	}
	if (&Session{}).Valid() {
		t.Fatalf("zero user session must be invalid")
	}
	if !(&Session{UserID: 1}).Valid() {
		t.Fatalf("expected valid")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "값", "다음"); got != "값" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonEmpty("", "  "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
