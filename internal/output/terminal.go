// Package output renders game progress to the terminal and saves finished
// game transcripts to disk.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).Padding(0, 2).Border(lipgloss.RoundedBorder())
	roundStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	nameStyle     = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	judgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	winStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	verdictStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// PrintTitle prints the game banner.
func PrintTitle() {
	fmt.Println(titleStyle.Render("REVERSE TURING TEST"))
	fmt.Println("One human hides among AI characters. The judges will try to unmask them.")
}

// PrintQuestion prints the round header and question.
func PrintQuestion(round, total int, q game.Question) {
	fmt.Printf("\n%s %s\n", roundStyle.Render(fmt.Sprintf("[Round %d/%d]", round, total)), categoryStyle.Render(q.Category))
	fmt.Println(q.Text)
}

// PrintResponses prints every persona's response for a round.
func PrintResponses(personas []*game.Persona, round int) {
	fmt.Println()
	for _, p := range personas {
		if round <= len(p.Responses) {
			fmt.Printf("%s: %q\n", nameStyle.Render(p.Name), p.Responses[round-1])
		}
	}
}

// PrintSuspicions prints every persona's suspicion for a round.
func PrintSuspicions(personas []*game.Persona, round int) {
	fmt.Println()
	for _, p := range personas {
		if round <= len(p.Suspicions) {
			fmt.Printf("%s suspects: %q\n", nameStyle.Render(p.Name), p.Suspicions[round-1])
		}
	}
}

// PrintIntroductions prints every persona's introduction.
func PrintIntroductions(personas []*game.Persona) {
	fmt.Println()
	for _, p := range personas {
		if p.Introduction != "" {
			fmt.Printf("%s: %q\n", nameStyle.Render(p.Name), p.Introduction)
		}
	}
}

// PrintJudgeAnalysis prints one judge's per-round suspicion.
func PrintJudgeAnalysis(u game.Utterance) {
	fmt.Printf("%s %q\n", judgeStyle.Render("Judge "+u.Judge+":"), u.Text)
}

// PrintUtterance prints one turn of the panel discussion.
func PrintUtterance(round int, u game.Utterance) {
	fmt.Printf("%s %s %s\n",
		roundStyle.Render(fmt.Sprintf("[Deliberation %d]", round)),
		judgeStyle.Render("Judge "+u.Judge+":"),
		u.Text,
	)
}

// PrintVote prints one cast vote.
func PrintVote(voter, target string) {
	fmt.Printf("%s votes for %s\n", nameStyle.Render(voter), target)
}

// PrintVerdict prints the panel's final verdict.
func PrintVerdict(res *game.PanelResult) {
	var how string
	switch {
	case res.Consensus && res.Rounds == 0:
		how = "unanimously"
	case res.Consensus:
		how = fmt.Sprintf("by consensus after %d discussion round(s)", res.Rounds)
	default:
		how = fmt.Sprintf("by majority after %d discussion round(s)", res.Rounds)
	}
	fmt.Printf("\n%s The judges name %s %s.\n", verdictStyle.Render("VERDICT:"), nameStyle.Render(res.Verdict), how)
}

// PrintGameOver prints the final outcome from the human's perspective.
func PrintGameOver(humanWon bool) {
	if humanWon {
		fmt.Println(winStyle.Render("\nYOU WIN"))
		fmt.Println("You successfully disguised yourself as an AI and fooled the judges.")
		return
	}
	fmt.Println(loseStyle.Render("\nYOU LOSE"))
	fmt.Println("The judges saw through your disguise and identified you as the human.")
}
