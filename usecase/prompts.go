package usecase

import (
	"fmt"
	"sort"
	"strings"
)

// System-role instructions, one per generation kind.
const (
	meditationQuestionSystem    = "You are a meditation expert who asks thoughtful, personalized questions to understand a person's meditation needs."
	meditationScriptSystem      = "You are a meditation expert who creates deeply personalized, calming meditation scripts that address specific user needs and emotions."
	visualizationQuestionSystem = "You are a visualization expert who asks thoughtful, personalized questions to help people achieve their goals."
	visualizationScriptSystem   = "You are a visualization expert who creates deeply personalized, vivid visualization scripts that help people achieve their goals and overcome challenges."
	goalAnalysisSystem          = "You are a goal analysis expert. Analyze goals and provide structured insights. Return responses in JSON format."
	challengesSystem            = "You are a problem-solving expert who identifies challenges and provides practical solutions."
)

// answersBlock serializes prior answers as one "- {id}: {value}" line per
// answer under a heading. Keys are sorted so the prompt is deterministic;
// intake ids are q1..q5 so sorted order matches intake order.
func answersBlock(heading string, answers map[string]any) string {
	if len(answers) == 0 {
		return ""
	}

	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "- %s: %v\n", id, answers[id])
	}
	return b.String()
}

func meditationQuestionPrompt(mood string, answers map[string]any, questionIndex int) string {
	return fmt.Sprintf(`You are a meditation coach conducting an intake session. The user feels %s.

%s

Current question number: %d of 5

Generate the next personalized question for meditation intake. The question should:
- Be relevant to their mood: %s
- Build upon their previous answers
- Help understand their meditation needs
- Be conversational and empathetic

Return only the question text, nothing else.`,
		mood, answersBlock("Previous answers:", answers), questionIndex+1, mood)
}

func meditationScriptPrompt(mood string, minutes int, answers map[string]any) string {
	return fmt.Sprintf(`Create a %d-minute personalized meditation script for someone feeling %s.

%s

The script should be:
- Deeply personalized based on their mood (%s) and all their answers
- Include specific references to their stressors, body tension, and desired outcomes
- Use calming, soothing language that matches their emotional state
- Include breathing guidance and relaxation techniques
- Written in a conversational, empathetic tone
- Approximately %d minutes when spoken at a calm pace
- Include natural pauses for breathing (indicated by "...")
- Address their specific needs mentioned in the intake

Make it feel like you truly understand their situation and are speaking directly to them.
Return only the meditation script text.`,
		minutes, mood, answersBlock("User's detailed responses:", answers), mood, minutes)
}

func visualizationQuestionPrompt(goal, category, complexity, experienceLevel string, answers map[string]any, questionIndex int) string {
	return fmt.Sprintf(`You are a visualization coach conducting a goal-setting session.

Goal: %s
Category: %s
Complexity: %s
User Experience: %s
Current Question: %d of 5

%s

Generate the next personalized question that:
- Builds upon previous answers
- Is appropriate for %s level
- Helps identify challenges or solutions
- Moves toward creating a vivid visualization

Return only the question text.`,
		goal, category, complexity, experienceLevel, questionIndex+1,
		answersBlock("Previous answers:", answers), experienceLevel)
}

func goalAnalysisPrompt(goal, category, timeline, currentState, desiredState string) string {
	return fmt.Sprintf(`Goal: %s
Category: %s
Timeline: %s
Current Emotional State: %s
Desired Emotional State: %s

Analyze this goal and provide:
1. Complexity level (Simple/Moderate/Complex)
2. 3-5 potential challenges
3. Recommended approach
4. 3-5 success factors
5. Realistic timeline estimate

Return as JSON format.`,
		goal, category, timeline, currentState, desiredState)
}

func challengesPrompt(goal, category string, answers map[string]any) string {
	return fmt.Sprintf(`Analyze this goal and identify challenges and solutions:

Goal: %s
Category: %s
%s

Provide:
1. 3-4 primary challenges
2. 2-3 secondary challenges
3. Specific solutions for each challenge
4. Helpful resources (books, tools, people)
5. Mindset shifts needed

Return as structured analysis.`,
		goal, category, answersBlock("User's responses:", answers))
}

func visualizationScriptPrompt(goal, complexity, sessionType, experienceLevel string, answers map[string]any, challenges []string) string {
	challengesContext := ""
	if len(challenges) > 0 {
		challengesContext = fmt.Sprintf("Identified challenges: %s\n", strings.Join(challenges, ", "))
	}

	return fmt.Sprintf(`Create a %s visualization script for someone with a %s goal: %s

%s
%s

The script should be:
- Deeply personalized based on their goal and answers
- Address specific challenges they've identified
- Include vivid sensory details (sight, sound, touch, emotion)
- Use calming, motivational language
- Include specific action steps within the visualization
- Written for %s level
- Approximately 5-7 minutes when spoken
- Include natural pauses for reflection (indicated by "...")

Make it feel like a personal coaching session that guides them to their goal.
Return only the visualization script text.`,
		sessionType, complexity, goal,
		answersBlock("User's detailed responses:", answers), challengesContext, experienceLevel)
}

// Fallback script templates, used whenever generation fails.

func fallbackMeditationScript(mood string, minutes int) string {
	return fmt.Sprintf(`Welcome to your %d-minute meditation session for feeling %s.

Take a deep breath in... and let it out slowly...

As you settle into this moment, remember that you are safe and supported.
This time is yours to find peace and clarity.

Continue breathing deeply and allow yourself to be present in this moment...`,
		minutes, mood)
}

func fallbackVisualizationScript(goal string) string {
	return fmt.Sprintf(`Welcome to your visualization session for achieving: %s

Take a deep breath in... and let it out slowly...

As you settle into this moment, imagine yourself having already achieved your goal.
See it clearly in your mind's eye. Feel the emotions of success flowing through you.

You are capable, you are worthy, and you are on your way to achieving %s.

Continue breathing deeply and allow this vision to become real in your mind...`,
		goal, goal)
}
