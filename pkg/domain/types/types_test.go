package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
)

func TestPageKey(t *testing.T) {
	t.Run("known keys resolve to routes", func(t *testing.T) {
		gt.Value(t, types.PageTimeline.Route()).Equal("/tijdlijn")
		gt.Value(t, types.PageDeadlines.Route()).Equal("/deadlines")
		gt.Value(t, types.PageDiscrimination.Route()).Equal("/discriminatie-check")
		gt.Value(t, types.PageHome.Route()).Equal("/")
	})

	t.Run("unknown key falls back to the root route", func(t *testing.T) {
		unknown := types.PageKey("instellingen")
		gt.Bool(t, unknown.IsValid()).False()
		gt.Value(t, unknown.Route()).Equal("/")
		gt.Value(t, unknown.DisplayName()).Equal("startpagina")
	})

	t.Run("every key has a route and a display name", func(t *testing.T) {
		for _, key := range types.AllPageKeys() {
			gt.Bool(t, key.IsValid()).True()
			gt.Value(t, key.Route() != "").Equal(true)
			gt.Value(t, key.DisplayName() != "").Equal(true)
		}
	})
}

func TestCharacteristic(t *testing.T) {
	t.Run("known grounds pass through", func(t *testing.T) {
		gt.Value(t, types.CharacteristicAge.Normalize()).Equal(types.CharacteristicAge)
		gt.Value(t, types.CharacteristicPregnancy.Normalize()).Equal(types.CharacteristicPregnancy)
	})

	t.Run("unknown ground degrades to the fallback", func(t *testing.T) {
		gt.Value(t, types.Characteristic("lengte").Normalize()).Equal(types.CharacteristicMultiple)
		gt.Value(t, types.Characteristic("").Normalize()).Equal(types.CharacteristicMultiple)
	})

	t.Run("the fallback itself is not a listed ground", func(t *testing.T) {
		gt.Bool(t, types.CharacteristicMultiple.IsValid()).False()
		for _, c := range types.AllCharacteristics() {
			gt.Value(t, c == types.CharacteristicMultiple).Equal(false)
		}
	})
}

func TestEventType(t *testing.T) {
	t.Run("known types pass through", func(t *testing.T) {
		gt.Value(t, types.EventTypeDismissal.Normalize()).Equal(types.EventTypeDismissal)
		gt.Value(t, types.EventTypeEvidence.Normalize()).Equal(types.EventTypeEvidence)
	})

	t.Run("unknown type degrades to other", func(t *testing.T) {
		gt.Value(t, types.EventType("vakantie").Normalize()).Equal(types.EventTypeOther)
	})

	t.Run("parse rejects unknown values", func(t *testing.T) {
		parsed, err := types.ParseEventType("warning")
		gt.NoError(t, err)
		gt.Value(t, parsed).Equal(types.EventTypeWarning)

		_, err = types.ParseEventType("vakantie")
		gt.Error(t, err)
	})
}

func TestDeadlineKind(t *testing.T) {
	t.Run("all kinds are valid", func(t *testing.T) {
		for _, kind := range types.AllDeadlineKinds() {
			gt.Bool(t, kind.IsValid()).True()
		}
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		gt.Bool(t, types.DeadlineKind("vakantiegeld").IsValid()).False()
	})
}
