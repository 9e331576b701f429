package domain

// State is the versioned snapshot every engine reducer works on.
// Version increases by one on every committed transition.
type State struct {
	Version    uint64          `json:"version"`
	User       User            `json:"user"`
	Punishment PunishmentState `json:"punishment"`
	Tasks      []Task          `json:"tasks"`
	Quests     []Quest         `json:"quests"`
	Missions   []Mission       `json:"missions"`
}

// Profile is the persisted singleton half of State
type Profile struct {
	User       User            `json:"user"`
	Punishment PunishmentState `json:"punishment"`
	Version    uint64          `json:"version"`
}

// Profile extracts the singleton half of s
func (s State) Profile() Profile {
	return Profile{User: s.User.Clone(), Punishment: s.Punishment.Clone(), Version: s.Version}
}

// Clone returns a deep copy so reducers never alias committed state
func (s State) Clone() State {
	out := State{
		Version:    s.Version,
		User:       s.User.Clone(),
		Punishment: s.Punishment.Clone(),
	}
	if s.Tasks != nil {
		out.Tasks = make([]Task, len(s.Tasks))
		for i, t := range s.Tasks {
			out.Tasks[i] = t.Clone()
		}
	}
	if s.Quests != nil {
		out.Quests = make([]Quest, len(s.Quests))
		for i, q := range s.Quests {
			out.Quests[i] = q.Clone()
		}
	}
	if s.Missions != nil {
		out.Missions = make([]Mission, len(s.Missions))
		for i, m := range s.Missions {
			out.Missions[i] = m.Clone()
		}
	}
	return out
}

// Task returns a pointer into s.Tasks, or nil
func (s *State) Task(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// Quest returns a pointer into s.Quests, or nil
func (s *State) Quest(id string) *Quest {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return &s.Quests[i]
		}
	}
	return nil
}

// Mission returns a pointer into s.Missions, or nil
func (s *State) Mission(id string) *Mission {
	for i := range s.Missions {
		if s.Missions[i].ID == id {
			return &s.Missions[i]
		}
	}
	return nil
}

// Remove deletes the item with id from the kind's collection and reports whether it existed
func (s *State) Remove(kind ItemKind, id string) bool {
	switch kind {
	case KindTask:
		for i := range s.Tasks {
			if s.Tasks[i].ID == id {
				s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
				return true
			}
		}
	case KindQuest:
		for i := range s.Quests {
			if s.Quests[i].ID == id {
				s.Quests = append(s.Quests[:i], s.Quests[i+1:]...)
				return true
			}
		}
	case KindMission:
		for i := range s.Missions {
			if s.Missions[i].ID == id {
				s.Missions = append(s.Missions[:i], s.Missions[i+1:]...)
				return true
			}
		}
	}
	return false
}
