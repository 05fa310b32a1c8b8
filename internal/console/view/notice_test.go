package view

import (
	"testing"

	"github.com/devhub/admin-console/internal/console/client"
)

func TestFailureMessage(t *testing.T) {
	cases := []struct {
		name string
		err  *client.Error
		want string
	}{
		{"unauthenticated", &client.Error{Kind: client.KindUnauthenticated}, msgSessionExpired},
		{"network", &client.Error{Kind: client.KindNetwork}, msgNetwork},
		{"http with message", &client.Error{Kind: client.KindHTTP, Status: 500, Message: "boom"}, "boom"},
		{"http without message", &client.Error{Kind: client.KindHTTP, Status: 503}, "request failed (HTTP 503)"},
		{"business with message", &client.Error{Kind: client.KindBusiness, Message: "not found"}, "not found"},
		{"business without message", &client.Error{Kind: client.KindBusiness}, "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FailureMessage(tc.err, "fallback"); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestQueue_DrainClears(t *testing.T) {
	q := NewQueue()
	q.Notify(Success("a"))
	q.Notify(Info("b"))

	got := q.Drain()
	if len(got) != 2 || got[0].Message != "a" || got[1].Level != LevelInfo {
		t.Fatalf("unexpected notices %+v", got)
	}
	if q.Len() != 0 {
		t.Fatal("queue should be empty after drain")
	}
}
