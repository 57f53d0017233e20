package entities

import (
	"strings"
	"time"
)

// One-tap session types. Scripts are fixed and never generated.
const (
	OneTapQuickRelief   = "quick-relief"
	OneTapDailyPractice = "daily-practice"
	OneTapDeepDive      = "deep-dive"
)

// oneTapScripts holds the fixed ordered step sequences per session type.
var oneTapScripts = map[string][]string{
	OneTapQuickRelief: {
		"Hey love, you're safe now. Let's take just 3 minutes together to settle your breath and heart...",
		"Close your eyes gently. Inhale slowly, feeling the air fill your chest... Exhale, letting your shoulders drop...",
		"Notice your heartbeat. It's okay to feel what you're feeling. You are not alone. With every breath, imagine a soft, warm light wrapping around you, calming your body and mind...",
		"If thoughts come, let them float by like clouds. Bring your attention back to your breath, back to this gentle moment...",
		"You are loved. You are safe. You are enough. Let's finish with one deep breath together...",
		"When you're ready, gently open your eyes. Carry this calm with you.",
	},
	OneTapDailyPractice: {
		"Welcome back. Let's center into your breath, body, and being. You're doing beautifully...",
		"Find a comfortable seat. Let your hands rest softly. Close your eyes or lower your gaze.",
		"Begin to notice your breath. Inhale through your nose, slow and gentle. Exhale, letting go of any tension.",
		"With each breath, feel your body settle. Notice the sounds around you—maybe birds, a gentle breeze, or the quiet hum of life.",
		"If your mind wanders, that's okay. Gently bring it back to your breath, to this moment.",
		"Imagine a soft bell ringing, inviting you deeper into calm. Let your thoughts drift like leaves on water.",
		"You are present. You are enough. Let's finish with gratitude for this time you've given yourself.",
		"When you're ready, open your eyes and carry this clarity into your day.",
	},
	OneTapDeepDive: {
		"Close your eyes. We're going deeper now... Let this stillness hold you completely...",
		"Feel the gentle rhythm of your breath, like waves caressing the shore. With every inhale, draw in peace. With every exhale, release what no longer serves you.",
		"Let your body grow heavy, sinking into the support beneath you. Imagine a vast ocean, endless and calm, holding you in its embrace.",
		"Thoughts may drift in and out, like tides. Let them come and go, returning always to the soothing sound of your breath.",
		"If you wish, invite a sense of healing or deep rest. Trust this moment. Trust yourself.",
		"You are safe. You are whole. You are deeply cared for. Let yourself float in this gentle darkness, nourished by the quiet.",
		"When you're ready, slowly return, bringing this peace with you into the world.",
	},
}

// OneTapSteps returns the ordered step list for a session type.
// The second return is false for unknown session types.
func OneTapSteps(sessionType string) ([]string, bool) {
	steps, ok := oneTapScripts[sessionType]
	return steps, ok
}

// OneTapFullScript joins the steps of a session type into the full
// script used for whole-session audio generation.
func OneTapFullScript(sessionType string) (string, bool) {
	steps, ok := oneTapScripts[sessionType]
	if !ok {
		return "", false
	}
	return strings.Join(steps, "\n"), true
}

// StepTiming describes when a step starts within the full session and
// how long it is expected to take when spoken.
type StepTiming struct {
	StepIndex int
	StartsAt  time.Duration
	Duration  time.Duration
}

const (
	spokenWordsPerMinute = 150
	minStepDuration      = 2 * time.Second
)

// EstimateStepTimings estimates per-step timings for a session type at a
// calm spoken pace. Estimates only; actual audio length depends on the
// voice and synthesis model.
func EstimateStepTimings(sessionType string) ([]StepTiming, bool) {
	steps, ok := oneTapScripts[sessionType]
	if !ok {
		return nil, false
	}

	timings := make([]StepTiming, len(steps))
	var offset time.Duration
	for i, step := range steps {
		words := len(strings.Fields(step))
		duration := time.Duration(float64(words) / spokenWordsPerMinute * float64(time.Minute))
		if duration < minStepDuration {
			duration = minStepDuration
		}
		timings[i] = StepTiming{
			StepIndex: i,
			StartsAt:  offset,
			Duration:  duration,
		}
		offset += duration
	}
	return timings, true
}
