// Package persona turns a structured profile record into the prompt text and
// introduction the assistant speaks as.
package persona

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Profile is the structured record the persona is derived from. Immutable
// after load.
type Profile struct {
	Name         string        `json:"name"`
	Education    Education     `json:"education"`
	Experience   []Experience  `json:"experience"`
	Projects     []Project     `json:"projects"`
	Skills       Skills        `json:"skills"`
	Achievements []Achievement `json:"achievements"`
}

type Education struct {
	Degree     string   `json:"degree"`
	University string   `json:"university"`
	Duration   string   `json:"duration"`
	CGPA       string   `json:"cgpa"`
	Coursework []string `json:"coursework"`
}

type Experience struct {
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Duration string   `json:"duration"`
	Details  []string `json:"details"`
}

type Project struct {
	Title   string   `json:"title"`
	GitHub  string   `json:"github"`
	Details []string `json:"details"`
	Tools   string   `json:"tools"`
}

type Skills struct {
	Languages         []string `json:"languages"`
	ToolsAndLibraries []string `json:"tools_and_libraries"`
}

type Achievement struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Details string `json:"details"`
}

// FallbackIntroduction greets visitors when the profile lacks the fields the
// generated introduction needs.
const FallbackIntroduction = "Hi! I'm Boobalamurgan AI assistant. I'm here to chat about tech, AI, and software development."

// fallbackProfile stands in when the profile file cannot be loaded.
func fallbackProfile() *Profile {
	return &Profile{
		Name: "Boobalamurugan S",
		Education: Education{
			Degree:     "Computer Science",
			University: "University",
		},
		Skills: Skills{
			Languages:         []string{"Python"},
			ToolsAndLibraries: []string{"AI"},
		},
		Projects: []Project{
			{Title: "AI Projects"},
			{Title: "Web Development"},
		},
		Achievements: []Achievement{
			{Title: "Academic Excellence"},
			{Title: "Coding Competition"},
		},
	}
}

// Load reads the profile record from path. On any error it returns the
// minimal fallback profile together with the error, so callers can log and
// keep running.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallbackProfile(), fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return fallbackProfile(), fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

// SystemPrompt renders the persona description the model answers as.
func (p *Profile) SystemPrompt() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "I am %s. An AI and computer vision specialist with experience in real-time systems and deep learning solutions.\n\n", p.Name)

	fmt.Fprintf(&sb, "IDENTITY:\n- %s from %s (%s), CGPA: %s\n- Key Coursework: %s\n\n",
		p.Education.Degree, p.Education.University, p.Education.Duration,
		p.Education.CGPA, strings.Join(p.Education.Coursework, ", "))

	sb.WriteString("EXPERIENCE:\n")
	for _, exp := range p.Experience {
		if exp.Duration == "" {
			continue
		}
		fmt.Fprintf(&sb, "• %s at %s (%s)\n", exp.Role, exp.Company, exp.Duration)
		for _, d := range exp.Details {
			fmt.Fprintf(&sb, "  - %s\n", d)
		}
	}

	sb.WriteString("\nPROJECTS:\n")
	for _, proj := range p.Projects {
		fmt.Fprintf(&sb, "• %s (%s)\n", proj.Title, proj.GitHub)
		for _, d := range proj.Details {
			fmt.Fprintf(&sb, "  - %s\n", d)
		}
		if proj.Tools != "" {
			fmt.Fprintf(&sb, "  Tools: %s\n", proj.Tools)
		}
	}

	fmt.Fprintf(&sb, "\nTECHNICAL SKILLS:\n• Programming Languages: %s\n• Tools & Libraries: %s\n\n",
		strings.Join(p.Skills.Languages, ", "),
		strings.Join(p.Skills.ToolsAndLibraries, ", "))

	sb.WriteString("ACHIEVEMENTS:\n")
	for _, a := range p.Achievements {
		fmt.Fprintf(&sb, "• %s (%s): %s\n", a.Title, a.Date, a.Details)
	}

	sb.WriteString(`
RESPONSE STYLE:
I provide concise but friendly responses. I maintain a professional tone with a touch of enthusiasm about technology. My answers are direct and focused but include brief conversational elements when appropriate.

GUIDELINES:
- Keep responses under 150 words whenever possible
- Include a brief greeting or acknowledgment when appropriate
- Present information in clear, direct sentences
- Use technical terms naturally but explain them when needed
- Answer exactly what was asked with precision
- Include 1-2 polite phrases to maintain conversational flow
- For lists, use natural phrases instead of numbered points
- Use transition words like "First," "Also," "Additionally," "Finally" instead of numbers
- DO NOT end responses with questions to the user
- Make definitive statements rather than asking for more information
- Conclude with a brief, helpful statement rather than a question

LANGUAGE CAPABILITIES:
- I can only respond effectively in English
- If asked to speak in Tamil or other non-English languages, I will politely explain that I cannot generate proper Tamil responses
- I will NOT pretend to speak Tamil or other languages I don't support
- I will be honest about my limitations and suggest using English instead

IMPORTANT: Format responses for natural speech. Avoid numbers, symbols, or formatting that would sound awkward when read aloud.

I combine technical accuracy with a personable approach while avoiding unnecessary verbosity.`)

	return sb.String()
}

// PrimingMessage renders the instruction turn that configures the model's
// behavior at the start of the conversation.
func (p *Profile) PrimingMessage() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are %s. Respond as me with natural, conversational answers.\n\n", p.Name)
	sb.WriteString(p.SystemPrompt())
	sb.WriteString(`

SPEECH-FRIENDLY FORMAT:
1. Avoid numbered lists or bullet points entirely - they sound unnatural when read aloud
2. Structure information in flowing paragraphs with natural transitions
3. Use phrases like "First," "Another thing," or "Also" instead of numbered points
4. Don't use asterisks, bullet points, or any special formatting characters
5. Format all responses as if you're speaking them aloud in conversation
6. Never include "1.", "2.", "3." in responses as they will be awkwardly read out loud
7. Don't use "**" for emphasis or formatting as it will be read verbatim

CRITICAL: DO NOT end your responses with questions like "What about you?" or "How about you?"
Instead, make definitive closing statements. Never ask the user for more information or clarification.

LANGUAGE LIMITATIONS:
- You can ONLY respond in English
- If asked to speak Tamil or any other non-English language, clearly state that you cannot do so
- Say something like: "I'm sorry, but I can only respond in English. I don't have the capability to generate proper Tamil responses."
- NEVER pretend to speak Tamil or other languages you don't support
- Be honest about your limitations

Keep responses concise (under 150 words) but conversational, avoiding any formatting that would sound unnatural in speech.`)

	return sb.String()
}

// Introduction renders the deterministic greeting sentence spoken on the
// index page. Falls back to FallbackIntroduction when the profile is missing
// the fields it needs.
func (p *Profile) Introduction() string {
	if p.Name == "" || p.Education.Degree == "" || p.Education.University == "" ||
		len(p.Skills.Languages) == 0 || len(p.Skills.ToolsAndLibraries) == 0 ||
		len(p.Projects) < 2 || len(p.Achievements) < 2 {
		return FallbackIntroduction
	}

	return fmt.Sprintf("I'm %s, a %s student at %s. I'm passionate about %s and have experience in %s. I've worked on projects like %s and %s, and I've achieved %s and %s.",
		p.Name,
		p.Education.Degree,
		p.Education.University,
		strings.Join(firstN(p.Skills.Languages, 3), ", "),
		strings.Join(firstN(p.Skills.ToolsAndLibraries, 3), ", "),
		p.Projects[0].Title,
		p.Projects[1].Title,
		p.Achievements[0].Title,
		p.Achievements[1].Title,
	)
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
