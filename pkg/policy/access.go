// Package policy decides which fields and tasks a user may see or change.
//
// Every read path filters through VisibleFields / VisibleTasks so the role matrix lives in
// one place.
package policy

import "olive/entities"

// CanAccessField reports whether u may read f.
// Administrators and agronomists see every grove, owners and producers only their own.
func CanAccessField(u *entities.User, f *entities.Field) bool {
	if u == nil || f == nil {
		return false
	}
	switch u.Role {
	case entities.RoleAdministrator, entities.RoleAgronomist:
		return true
	case entities.RoleFieldOwner, entities.RoleProducer:
		return f.OwnerID == u.ID
	}
	return false
}

func CanMutateField(u *entities.User, f *entities.Field) bool {
	if u == nil || f == nil {
		return false
	}
	return u.Role == entities.RoleAdministrator || f.OwnerID == u.ID
}

// CanAccessTask grants access through the task's field or a direct assignment.
// f may be nil when the field no longer exists.
func CanAccessTask(u *entities.User, t *entities.Task, f *entities.Field) bool {
	if u == nil || t == nil {
		return false
	}
	if t.AssignedTo != "" && t.AssignedTo == u.ID {
		return true
	}
	if f == nil {
		return u.Role == entities.RoleAdministrator
	}
	return CanAccessField(u, f)
}

func VisibleFields(u *entities.User, fields []entities.Field) []entities.Field {
	out := make([]entities.Field, 0, len(fields))
	for i := range fields {
		if CanAccessField(u, &fields[i]) {
			out = append(out, fields[i])
		}
	}
	return out
}

// VisibleTasks keeps the tasks u may read; fields is the full collection used to resolve
// each task's grove.
func VisibleTasks(u *entities.User, tasks []entities.Task, fields []entities.Field) []entities.Task {
	byID := make(map[string]*entities.Field, len(fields))
	for i := range fields {
		byID[fields[i].ID] = &fields[i]
	}
	out := make([]entities.Task, 0, len(tasks))
	for i := range tasks {
		if CanAccessTask(u, &tasks[i], byID[tasks[i].FieldID]) {
			out = append(out, tasks[i])
		}
	}
	return out
}
