package root

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/ui"
)

const (
	timeLayout = "2006-01-02 15:04"
	barWidth   = 20
)

func formatDeadline(w domain.WorkItem, loc *time.Location) string {
	if w.Deadline == nil {
		return ""
	}
	return ui.Muted.Render("due " + w.Deadline.In(loc).Format(timeLayout))
}

func itemLine(kind domain.ItemKind, w domain.WorkItem, loc *time.Location, extra ...string) string {
	parts := []string{
		ui.KindIcon(kind),
		ui.Key.Render(w.ID),
		w.Title,
		ui.Muted.Render(fmt.Sprintf("[%s/%s, %d exp]", w.Category, w.Difficulty, w.ExpReward)),
		ui.ItemState(w),
	}
	parts = append(parts, extra...)
	if d := formatDeadline(w, loc); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}

func printTask(out io.Writer, t domain.Task, loc *time.Location) {
	fmt.Fprintln(out, itemLine(domain.KindTask, t.WorkItem, loc))
}

func printQuest(out io.Writer, q domain.Quest, loc *time.Location) {
	var tags []string
	switch {
	case q.IsRecoveryQuest:
		tags = append(tags, ui.Bad.Render("recovery"))
	case q.IsMainQuest:
		tags = append(tags, ui.Gold.Render("main"))
	case q.IsDaily:
		tags = append(tags, ui.H2.Render("daily"))
	default:
		tags = append(tags, ui.Muted.Render("side"))
	}
	fmt.Fprintln(out, itemLine(domain.KindQuest, q.WorkItem, loc, tags...))
	for i, t := range q.Tasks {
		mark := "[ ]"
		if t.Completed {
			mark = ui.Good.Render("[x]")
		}
		fmt.Fprintf(out, "    %d. %s %s %s\n", i+1, mark, ui.Muted.Render(t.ID), t.Title)
	}
}

func printMission(out io.Writer, m domain.Mission, loc *time.Location) {
	progress := fmt.Sprintf("rank %s day %d %s %d/%d",
		m.Rank, m.Day,
		ui.ProgressBar(int64(len(m.CompletedTaskIndices)), int64(m.Count), m.Count),
		len(m.CompletedTaskIndices), m.Count)
	fmt.Fprintln(out, itemLine(domain.KindMission, m.WorkItem, loc, progress))
}

func printOutcome(out io.Writer, title string, o domain.Outcome) {
	msg := fmt.Sprintf("%s Completed %s %q: +%d exp", ui.IconDone, o.ItemKind, title, o.ExpAwarded)
	if o.GoldAwarded > 0 {
		msg += fmt.Sprintf(", +%d gold", o.GoldAwarded)
	}
	if o.Missed {
		fmt.Fprintln(out, ui.Warn.Render(msg+" (late, no gold)"))
	} else {
		fmt.Fprintln(out, ui.Good.Render(msg))
	}
	if o.LevelAfter != o.LevelBefore {
		fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d -> %d (rank %s)", o.LevelBefore, o.LevelAfter, o.Rank)))
	}
}

func untilText(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format(timeLayout)
}

func printStatus(out io.Writer, st domain.Status, loc *time.Location) {
	u := st.User
	p := st.Punishment

	var b strings.Builder
	fmt.Fprintln(&b, ui.Heading(ui.IconSparkle, "Ascendant"))
	fmt.Fprintln(&b, ui.LabelValue("Level", fmt.Sprintf("%d (rank %s)", u.Level, u.Rank)))
	fmt.Fprintln(&b, ui.LabelValue("EXP", fmt.Sprintf("%s %d/%d", ui.ProgressBar(u.Exp, u.ExpToNextLevel, barWidth), u.Exp, u.ExpToNextLevel)))
	fmt.Fprintln(&b, ui.LabelValue("Gold", ui.Gold.Render(fmt.Sprint(u.Gold))))
	fmt.Fprintln(&b, ui.LabelValue("Streak", fmt.Sprintf("%d days (best %d)", u.StreakDays, u.LongestStreak)))
	fmt.Fprintln(&b, ui.LabelValue("Modifiers", fmt.Sprintf("exp x%.2f, rank bonus x%.2f", st.ExpModifier, st.RankBonus)))

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, ui.H2.Render("Stats"))
	for _, a := range domain.Attributes {
		sp := u.Stats.For(a)
		fmt.Fprintf(&b, "  %-10s lvl %d (%d exp)\n", a, sp.Level, sp.Exp)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, ui.H2.Render("Penalties"))
	chances := fmt.Sprintf("%d/%d", p.ChanceCounter, domain.ChanceLimit)
	if p.ChanceCounter >= domain.ChanceLimit-1 {
		chances = ui.Bad.Render(chances)
	}
	fmt.Fprintln(&b, ui.LabelValue("  Misses this week", chances))
	if p.IsCursed {
		fmt.Fprintln(&b, ui.Bad.Render(fmt.Sprintf("  %s Cursed until %s", ui.IconCurse, untilText(p.CursedUntil, loc))))
	}
	if p.HasShadowFatigue {
		fmt.Fprintln(&b, ui.Bad.Render(fmt.Sprintf("  %s Shadow fatigue until %s", ui.IconCurse, untilText(p.ShadowFatigueUntil, loc))))
	}
	if st.SideQuestsLocked {
		fmt.Fprintln(&b, ui.Bad.Render(fmt.Sprintf("  %s Side quests locked until %s", ui.IconLock, untilText(p.LockedSideQuestsUntil, loc))))
	}
	if st.RedemptionAvailable {
		fmt.Fprintln(&b, ui.Warn.Render("  Redemption available: run `ascend redeem start`"))
	}
	if p.HasPendingRecovery {
		fmt.Fprintln(&b, ui.Warn.Render(fmt.Sprintf("  Redemption in progress (%d quests)", len(p.ActiveRecoveryQuestIDs))))
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, ui.H2.Render("Quota today"))
	fmt.Fprintf(&b, "  main %d/%d  side %d/%d  daily %d/%d  missions %d/%d",
		st.QuotaUsage.MainQuests, st.QuotaLimits.MainQuestsPerDay,
		st.QuotaUsage.SideQuests, st.QuotaLimits.SideQuestsPerDay,
		st.QuotaUsage.DailyQuests, st.QuotaLimits.DailyQuestsPerDay,
		st.QuotaUsage.Missions, st.QuotaLimits.MissionsPerDay)

	fmt.Fprintln(out, ui.Panel.Render(b.String()))
}
