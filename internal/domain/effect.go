package domain

// EffectType enumerates what the orchestrator does after a reducer commits
type EffectType string

const (
	EffectSaveItem    EffectType = "save_item"
	EffectDeleteItem  EffectType = "delete_item"
	EffectSaveProfile EffectType = "save_profile"
	EffectNotify      EffectType = "notify"
)

// Effect is one side effect returned by a reducer. Reducers never perform I/O.
type Effect struct {
	Type         EffectType
	ItemKind     ItemKind
	ItemID       string
	Notification *Notification
}

// SaveItem requests persistence of the item's committed value
func SaveItem(kind ItemKind, id string) Effect {
	return Effect{Type: EffectSaveItem, ItemKind: kind, ItemID: id}
}

// DeleteItem requests removal of the item from storage
func DeleteItem(kind ItemKind, id string) Effect {
	return Effect{Type: EffectDeleteItem, ItemKind: kind, ItemID: id}
}

// SaveProfile requests persistence of the user and punishment singletons
func SaveProfile() Effect {
	return Effect{Type: EffectSaveProfile}
}

// Notify requests delivery of n to subscribers
func Notify(n Notification) Effect {
	return Effect{Type: EffectNotify, Notification: &n}
}

// Notifications extracts the notification effects in order
func Notifications(effects []Effect) []Notification {
	var out []Notification
	for _, e := range effects {
		if e.Type == EffectNotify && e.Notification != nil {
			out = append(out, *e.Notification)
		}
	}
	return out
}
