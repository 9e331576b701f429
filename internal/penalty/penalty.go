// Package penalty implements the chance counter, shadow fatigue, curse and
// side-quest lock transitions plus the redemption flow.
package penalty

import (
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// ExpModifier returns 0.5 while cursed, 0.75 while fatigued, otherwise 1.0
func ExpModifier(p domain.PunishmentState) float64 {
	switch {
	case p.IsCursed:
		return ModifierCursed
	case p.HasShadowFatigue:
		return ModifierFatigued
	default:
		return ModifierClear
	}
}

// RecordMiss applies one missed-deadline event
func RecordMiss(p *domain.PunishmentState, mainQuest bool, now time.Time) []domain.Effect {
	effects := []domain.Effect{domain.SaveProfile()}
	endOfWeek := utils.EndOfPenaltyWeek(now)

	p.ChanceCounter++

	if mainQuest {
		p.MissedMainQuestStreak++
		if p.MissedMainQuestStreak >= MainQuestMissLimit {
			until := now.Add(SideQuestLockDuration)
			p.LockedSideQuestsUntil = &until
			p.MissedMainQuestStreak = 0
			effects = append(effects, domain.Notify(domain.Notification{
				Type:    domain.NotificationSideQuestsLocked,
				Message: MsgSideQuestsLocked,
				Until:   &until,
				At:      now,
			}))
		}
	} else {
		p.MissedMainQuestStreak = 0
	}

	switch {
	case p.ChanceCounter >= domain.ChanceLimit && !p.IsCursed:
		p.IsCursed = true
		p.CursedUntil = &endOfWeek
		p.HasShadowFatigue = false
		p.ShadowFatigueUntil = nil
		effects = append(effects, domain.Notify(domain.Notification{
			Type:    domain.NotificationCurseApplied,
			Message: MsgCurseApplied,
			Amount:  int64(p.ChanceCounter),
			Until:   &endOfWeek,
			At:      now,
		}))
	case p.ChanceCounter < domain.ChanceLimit:
		p.HasShadowFatigue = true
		p.ShadowFatigueUntil = &endOfWeek
		effects = append(effects, domain.Notify(domain.Notification{
			Type:    domain.NotificationShadowFatigueApplied,
			Message: fmt.Sprintf(MsgFatigueApplied, p.ChanceCounter, domain.ChanceLimit),
			Amount:  int64(p.ChanceCounter),
			Until:   &endOfWeek,
			At:      now,
		}))
	}

	return effects
}

// Reconcile runs the time-based transitions: curse, fatigue and lock expiry,
// then the weekly reset. It is idempotent for a given now.
func Reconcile(p *domain.PunishmentState, now time.Time) []domain.Effect {
	var effects []domain.Effect
	notify := func(t domain.NotificationType, msg string, until *time.Time) {
		effects = append(effects, domain.Notify(domain.Notification{Type: t, Message: msg, Until: until, At: now}))
	}

	if p.IsCursed && p.CursedUntil != nil && now.After(*p.CursedUntil) {
		end := utils.EndOfPenaltyWeek(now)
		p.IsCursed = false
		p.CursedUntil = nil
		p.HasShadowFatigue = true
		p.ShadowFatigueUntil = &end
		notify(domain.NotificationCurseLifted, MsgCurseLifted, &end)
	}

	if p.HasShadowFatigue && p.ShadowFatigueUntil != nil && now.After(*p.ShadowFatigueUntil) {
		p.HasShadowFatigue = false
		p.ShadowFatigueUntil = nil
		notify(domain.NotificationShadowFatigueCleared, MsgFatigueCleared, nil)
	}

	if p.LockedSideQuestsUntil != nil && !now.Before(*p.LockedSideQuestsUntil) {
		p.LockedSideQuestsUntil = nil
		notify(domain.NotificationSideQuestsUnlocked, MsgSideQuestsUnlocked, nil)
	}

	if weekly := WeeklyReset(p, now); weekly != nil {
		effects = append(effects, weekly...)
	}

	if len(effects) > 0 {
		effects = append([]domain.Effect{domain.SaveProfile()}, effects...)
	}
	return effects
}

// WeeklyReset zeroes the chance counter, clears curse and fatigue and re-enables
// redemption once per penalty week. The first call only stamps the week.
func WeeklyReset(p *domain.PunishmentState, now time.Time) []domain.Effect {
	weekStart := utils.StartOfPenaltyWeek(now)
	if p.WeekStart != nil && !weekStart.After(*p.WeekStart) {
		return nil
	}

	first := p.WeekStart == nil
	p.WeekStart = &weekStart
	if first {
		return []domain.Effect{domain.SaveProfile()}
	}

	p.ChanceCounter = 0
	p.IsCursed = false
	p.CursedUntil = nil
	p.HasShadowFatigue = false
	p.ShadowFatigueUntil = nil
	p.LastRedemptionDate = nil

	return []domain.Effect{domain.Notify(domain.Notification{
		Type:    domain.NotificationWeeklyReset,
		Message: MsgWeeklyReset,
		At:      now,
	})}
}
