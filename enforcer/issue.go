package enforcer

import "strings"

// issueBody renders the violations issue markdown. A violation that
// needs manual review gets the "Action Required" section, everything
// else the auto-fixable "Action" section.
func issueBody(messages []string, runID string) string {
	var b strings.Builder

	b.WriteString("# Naming Convention Violations\n\n")
	b.WriteString("This repository's name has the following issues:\n\n")
	for _, msg := range messages {
		b.WriteString("- " + msg + "\n")
	}

	needsManual := false
	for _, msg := range messages {
		if strings.Contains(msg, "manual review") {
			needsManual = true
			break
		}
	}

	if needsManual {
		b.WriteString("\n\n## Action Required\n\n")
		b.WriteString("This repository has more than 3 segments and requires manual review. ")
		b.WriteString("Please rename it to follow kebab-case convention with maximum 3 segments.\n")
	} else {
		b.WriteString("\n\n## Action\n\n")
		b.WriteString("This can be automatically fixed. The suggested name is shown above.\n")
	}

	b.WriteString("\n\n---\n")
	b.WriteString("*This issue was automatically generated by the convention enforcer.*\n")
	b.WriteString("*Run: " + runID + "*\n")

	return b.String()
}
