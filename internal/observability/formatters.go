// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/integration"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/store"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs a human-readable summary of recommendations.
func (p *Printer) PrintRecommendations(title string, recs []types.ContentRecommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec.TitleSuggestion))
		sb.WriteString(fmt.Sprintf("   Type: %s  Priority: %.2f\n", rec.ContentType, rec.PriorityScore))
		sb.WriteString(fmt.Sprintf("   Post at: %s\n", rec.BestTimeToPost))
		sb.WriteString(fmt.Sprintf("   Platforms: %s\n", strings.Join(rec.TargetPlatforms, ", ")))
	}
	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(recs)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// PrintStory outputs a human-readable summary of a story.
func (p *Printer) PrintStory(story *types.StoryContent) {
	if story == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:    %s\n", story.StoryID))
	sb.WriteString(fmt.Sprintf("Type:  %s\n", story.StoryType.Humanize()))
	sb.WriteString(fmt.Sprintf("Title: %s\n", story.Title))
	sb.WriteString(fmt.Sprintf("Tone:  %s\n", story.EmotionalTone))
	if story.Hook != "" {
		sb.WriteString(fmt.Sprintf("Hook:  %s\n", story.Hook))
	}

	platforms := make([]string, 0, len(story.PlatformAdaptations))
	for platform := range story.PlatformAdaptations {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	sb.WriteString(fmt.Sprintf("Adaptations: %s\n", strings.Join(platforms, ", ")))

	if story.SalesMetadata != nil && story.SalesMetadata.OptimizedForSales {
		sb.WriteString("Sales-optimized: yes\n")
	}

	p.printBox("Story", strings.TrimRight(sb.String(), "\n"))
}

// PrintCalendar outputs the non-empty days of a content calendar in date order.
func (p *Printer) PrintCalendar(calendar map[string]types.CalendarDay) {
	if len(calendar) == 0 {
		return
	}

	dates := make([]string, 0, len(calendar))
	for date := range calendar {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var sb strings.Builder
	for _, date := range dates {
		day := calendar[date]
		if len(day.Recommendations) == 0 && day.Story == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", date))
		for _, rec := range day.Recommendations {
			sb.WriteString(fmt.Sprintf("  post  %s\n", rec.TitleSuggestion))
		}
		if day.Story != nil {
			sb.WriteString(fmt.Sprintf("  story %s\n", day.Story.Title))
		}
	}

	p.printBox(fmt.Sprintf("Content Calendar (%d days)", len(calendar)), strings.TrimRight(sb.String(), "\n"))
}

// PrintStrategy outputs a human-readable summary of an integrated strategy.
func (p *Printer) PrintStrategy(strategy *integration.Strategy) {
	if strategy == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Artisan:  %s (%s)\n", strategy.Overview.ArtisanName, strategy.Overview.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Craft:    %s\n", strategy.Overview.Specialization))
	if len(strategy.Overview.ContentPillars) > 0 {
		sb.WriteString(fmt.Sprintf("Pillars:  %s\n", strings.Join(strategy.Overview.ContentPillars, ", ")))
	}
	if len(strategy.Overview.StorytellingThemes) > 0 {
		sb.WriteString(fmt.Sprintf("Themes:   %s\n", strings.Join(strategy.Overview.StorytellingThemes, ", ")))
	}

	platforms := make([]string, 0, len(strategy.PostingSchedule))
	for platform := range strategy.PostingSchedule {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	for _, platform := range platforms {
		entry := strategy.PostingSchedule[platform]
		sb.WriteString(fmt.Sprintf("%s: %s (%.1f posts/week)\n", platform, entry.Frequency, entry.WeeklyPosts))
	}

	p.printBox("Integrated Strategy", strings.TrimRight(sb.String(), "\n"))
}

// PrintProfiles outputs the stored profile summaries.
func (p *Printer) PrintProfiles(profiles []store.ProfileSummary) {
	if len(profiles) == 0 {
		p.printBox("Artisan Profiles", "No profiles stored yet")
		return
	}

	var sb strings.Builder
	for _, profile := range profiles {
		sb.WriteString(fmt.Sprintf("%s\n", profile.ProfileID))
		sb.WriteString(fmt.Sprintf("  %s, %s, %d years of %s\n",
			profile.Name, profile.Location, profile.ExperienceYears, profile.Specialization))
	}

	p.printBox("Artisan Profiles", strings.TrimRight(sb.String(), "\n"))
}
