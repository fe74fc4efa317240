package summarizer

import (
	"fmt"
	"strings"

	"career-backend/internal/recommend"
)

// BuildPrompt renders the career-guidance prompt for the given payload.
func BuildPrompt(payload recommend.Payload) string {
	var profile []string
	if len(payload.NormalizedUserSkills) > 0 {
		profile = append(profile, "- Current Skills: "+strings.Join(payload.NormalizedUserSkills, ", "))
	} else {
		profile = append(profile, "- Current Skills: None listed")
	}
	if len(payload.ExtractedSkillsFromText) > 0 {
		profile = append(profile, "- Skills inferred from text: "+strings.Join(payload.ExtractedSkillsFromText, ", "))
	}
	if payload.InterestDomain != "" {
		profile = append(profile, "- Interested Domain: "+payload.InterestDomain)
	}
	if note := strings.TrimSpace(payload.FreeText); note != "" {
		profile = append(profile, fmt.Sprintf("- User's Note: %q", note))
	}

	rolesText := "- No roles found based on the user's current skills."
	if len(payload.Roles) > 0 {
		var lines []string
		for _, role := range payload.Roles {
			missing := "no major gaps detected"
			if len(role.MissingSkills) > 0 {
				missing = strings.Join(role.MissingSkills, ", ")
			}
			lines = append(lines, fmt.Sprintf("- %s (%s/%s): Match %d%%, Missing skills: %s",
				role.Title, role.DomainName, role.BranchName, int(role.Similarity*100), missing))
		}
		rolesText = strings.Join(lines, "\n")
	}

	return strings.TrimSpace(fmt.Sprintf(promptTemplate, strings.Join(profile, "\n"), rolesText))
}

const promptTemplate = `
You are a senior career strategist AI tasked with preparing a structured career guidance report for the user.
Your response MUST follow a clear, step-wise format. Do not output a single paragraph.
Write in a way that feels professional, personalized, and tailored for the user's current stage (student, undergrad, or professional).
Target length: 150-200 words total.

### USER PROFILE ###
%s

### ANALYSIS (Matching Roles & Gaps) ###
%s

### TASK ###
Write your response in *this exact format*, adapting the content to the provided user profile and role analysis.
Prioritize relevance based on the user's stage (beginner, student, working professional) and clearly justify why each skill matters.
Encourage the user to use our Roadmaps and curated content as the primary learning path.
Avoid repetitive openings like "It's fantastic that..." and keep it professional and fresh each time.
**CRITICAL INSTRUCTION: Do not mention any skills that are not explicitly listed in the "Current Skills" or "Skills inferred from text" sections of the USER PROFILE. Do not make assumptions about the user's existing knowledge or skills.**
`
