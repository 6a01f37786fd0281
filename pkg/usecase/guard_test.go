package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/usecase"
)

func TestCrisisGuard(t *testing.T) {
	guard := usecase.NewCrisisGuard()

	t.Run("matches case-insensitively", func(t *testing.T) {
		referral, hit := guard.Check("Ik denk aan ZELFMOORD")
		gt.Value(t, hit).Equal(true)
		gt.Value(t, strings.Contains(referral, "113")).Equal(true)
	})

	t.Run("matches phrase inside a longer message", func(t *testing.T) {
		_, hit := guard.Check("soms wil ik gewoon uit het leven stappen, het is te veel")
		gt.Value(t, hit).Equal(true)
	})

	t.Run("ignores ordinary dismissal questions", func(t *testing.T) {
		_, hit := guard.Check("Ik ben ontslagen en weet niet wat ik moet doen")
		gt.Value(t, hit).Equal(false)
	})

	t.Run("custom keywords and referral", func(t *testing.T) {
		custom := usecase.NewCrisisGuard().
			WithKeywords([]string{"noodgeval"}).
			WithReferral("Bel direct 112.")

		referral, hit := custom.Check("dit is een NOODGEVAL")
		gt.Value(t, hit).Equal(true)
		gt.Value(t, referral).Equal("Bel direct 112.")

		_, hit = custom.Check("ik denk aan zelfmoord")
		gt.Value(t, hit).Equal(false)
	})
}
