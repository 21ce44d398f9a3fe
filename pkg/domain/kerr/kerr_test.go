package kerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

func TestKindOf(t *testing.T) {
	for name, testcase := range map[string]struct {
		err  error
		kind kerr.Kind
	}{
		"bad request is classified":                 {kerr.NewBadRequest("no"), kerr.BadRequest},
		"unauthorized is classified":                {kerr.NewUnauthorized("no"), kerr.Unauthorized},
		"not found is classified":                   {kerr.NewNotFound("no"), kerr.NotFound},
		"wrapped classified errors keep their kind": {fmt.Errorf("outer: %w", kerr.NewNotFound("no")), kerr.NotFound},
		"plain errors are internal":                 {errors.New("boom"), kerr.Internal},
		"nil is internal":                           {nil, kerr.Internal},
	} {
		t.Run(name, func(t *testing.T) {
			if kind := kerr.KindOf(testcase.err); kind != testcase.kind {
				t.Errorf("unmatch kind: %d, expected: %d", kind, testcase.kind)
			}
		})
	}
}

func TestMessageOf(t *testing.T) {
	t.Run("classified errors expose their message", func(t *testing.T) {
		msg, ok := kerr.MessageOf(kerr.NewBadRequest("Organization name is too short"))
		if !ok {
			t.Fatal("message should be extractable")
		}
		if msg != "Organization name is too short" {
			t.Errorf("unmatch message: %s", msg)
		}
	})

	t.Run("unclassified errors expose nothing", func(t *testing.T) {
		if _, ok := kerr.MessageOf(errors.New("pq: connection refused")); ok {
			t.Error("internal detail should not leak")
		}
	})
}

func TestMissing(t *testing.T) {
	t.Run("Missing unwraps to ErrMissing", func(t *testing.T) {
		err := kerr.Missing{Table: "users", Identity: "user-1"}
		if !errors.Is(err, kerr.ErrMissing) {
			t.Error("Missing should be ErrMissing")
		}
	})

	t.Run("Missing is not classified", func(t *testing.T) {
		err := kerr.Missing{Table: "users", Identity: "user-1"}
		if kerr.KindOf(err) != kerr.Internal {
			t.Error("Missing should stay unclassified until a coordinator names the resource")
		}
	})
}

func TestDuplicate(t *testing.T) {
	err := kerr.Duplicate{Table: "project_users", Constraint: "project_users_project_id_user_id_key"}
	if !errors.Is(err, kerr.ErrDuplicate) {
		t.Error("Duplicate should be ErrDuplicate")
	}
}
