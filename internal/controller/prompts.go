package controller

import (
	"fmt"
	"strings"
)

// AssistantName is the chat persona's name
const AssistantName = "Robo"

// IdeaPrompt asks for one project suggestion for the given stage title
func IdeaPrompt(stageTitle, language string) string {
	return fmt.Sprintf(`Give me one creative and fun project idea for university students to build in the area of: "%s".
The project must be practical and suitable for beginners or intermediate learners.
Present the idea in at most 3 lines and briefly list the main parts required.
Answer in %s in an encouraging tone.`, stageTitle, language)
}

// Persona is the system instruction sent with every chat turn
func Persona(language string) string {
	return fmt.Sprintf(`You are a smart assistant and an expert in robotics and electronics, and your name is "%s".
You are part of the robotics section of the Google Developer Group at Qassim University (GDG Qassim).
Your job is to help students learn robotics, Arduino, electronics and artificial intelligence.
Answer briefly (no more than 4 lines), in a friendly and motivating way, in %s.`, AssistantName, language)
}

// Greeting is the first assistant message of every transcript
func Greeting() string {
	return fmt.Sprintf("Welcome to the GDG Qassim community! I'm your assistant %q 🤖. How can I help you with robotics and electronics today?", AssistantName)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
