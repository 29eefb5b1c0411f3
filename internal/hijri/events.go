package hijri

import (
	"time"

	"github.com/zee00111/islamic-project/internal/model"
)

// DefaultEvents is the observance calendar served by the events endpoint.
// Dates follow the civil calendar and are maintained by hand per year.
func DefaultEvents() []model.IslamicEvent {
	return []model.IslamicEvent{
		{Date: "2025-01-29", Event: "Rajab Begins", Description: "Start of the sacred month of Rajab"},
		{Date: "2025-02-27", Event: "Isra and Mi'raj", Description: "Night Journey of Prophet Muhammad (PBUH)"},
		{Date: "2025-02-28", Event: "Sha'ban Begins", Description: "Start of the month of Sha'ban"},
		{Date: "2025-03-14", Event: "Laylat al-Bara'ah", Description: "Night of Forgiveness (15th Sha'ban)"},
		{Date: "2025-03-30", Event: "Ramadan Begins", Description: "Start of the holy month of Ramadan"},
		{Date: "2025-04-28", Event: "Eid al-Fitr", Description: "Festival of Breaking the Fast"},
		{Date: "2025-06-05", Event: "Day of Arafah", Description: "Second day of the Hajj pilgrimage"},
		{Date: "2025-06-06", Event: "Eid al-Adha", Description: "Festival of Sacrifice"},
		{Date: "2025-06-26", Event: "Islamic New Year", Description: "1 Muharram 1447"},
		{Date: "2025-07-05", Event: "Day of Ashura", Description: "10th Muharram"},
	}
}

// Upcoming filters events to those on or after the given day, preserving
// order. An empty result means the maintained list has run out for the year.
func Upcoming(events []model.IslamicEvent, now time.Time) []model.IslamicEvent {
	today := now.Format("2006-01-02")
	out := make([]model.IslamicEvent, 0, len(events))
	for _, ev := range events {
		if ev.Date >= today {
			out = append(out, ev)
		}
	}
	return out
}
