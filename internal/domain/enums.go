package domain

// ProcessStatus is the lifecycle status of a legal case.
type ProcessStatus string

const (
	ProcessStatusInProgress ProcessStatus = "Em andamento"
	ProcessStatusConcluded  ProcessStatus = "Concluido"
)

func (s ProcessStatus) String() string { return string(s) }

func (s ProcessStatus) IsValid() bool {
	switch s {
	case ProcessStatusInProgress, ProcessStatusConcluded:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// RoleFromAdmin converts the resolved admin flag into a UserRole.
func RoleFromAdmin(isAdmin bool) UserRole {
	if isAdmin {
		return UserRoleAdmin
	}
	return UserRoleUser
}

// EntityType identifies the table an activity record refers to.
type EntityType string

const (
	EntityTypeProcess     EntityType = "processos"
	EntityTypeUserProfile EntityType = "user_profiles"
)

func (e EntityType) String() string { return string(e) }

// ActivityAction is the kind of mutation captured by the activity trigger.
type ActivityAction string

const (
	ActivityActionInsert ActivityAction = "INSERT"
	ActivityActionUpdate ActivityAction = "UPDATE"
	ActivityActionDelete ActivityAction = "DELETE"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityActionInsert, ActivityActionUpdate, ActivityActionDelete:
		return true
	}
	return false
}

// GenerationAction selects what the AI workflow should produce.
type GenerationAction string

const (
	ActionCreateSummary  GenerationAction = "createSummary"
	ActionCreateDefense  GenerationAction = "createDefense"
	ActionAnalyzeDefense GenerationAction = "analyzeDefense"
)

func (a GenerationAction) String() string { return string(a) }

func (a GenerationAction) IsValid() bool {
	switch a {
	case ActionCreateSummary, ActionCreateDefense, ActionAnalyzeDefense:
		return true
	}
	return false
}

// WireValue is the action name the workflow engine expects.
// The engine names the analysis flow "analisarDefesa".
func (a GenerationAction) WireValue() string {
	if a == ActionAnalyzeDefense {
		return "analisarDefesa"
	}
	return string(a)
}

// Persisted reports whether the generated text is written back onto the
// process record.
func (a GenerationAction) Persisted() bool {
	return a == ActionCreateSummary || a == ActionCreateDefense
}
