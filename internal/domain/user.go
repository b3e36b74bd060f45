package domain

// Privacy holds the per-field visibility flags for a profile. The profile
// picture is always visible and has no flag.
type Privacy struct {
	Name     bool
	Location bool
	DOB      bool
}

// DefaultPrivacy matches the flags assigned at registration.
func DefaultPrivacy() Privacy {
	return Privacy{Name: true, Location: true, DOB: false}
}

type Account struct {
	ID             int64
	Email          string
	Password       string
	Name           string
	Location       string
	DOB            string
	ProfilePicture string
	Privacy        Privacy
	Moderator      bool
	Created        int64
}

// Profile is an account as seen by a viewer. Fields hidden by the owner's
// privacy flags are blank.
type Profile struct {
	Email          string
	Name           string
	Location       string
	DOB            string
	ProfilePicture string
	Privacy        Privacy
	Followers      []string
	Following      []string
}

// ProfileUpdate carries a full overwrite of the mutable profile fields.
type ProfileUpdate struct {
	Name           string
	Location       string
	DOB            string
	ProfilePicture string
	Privacy        Privacy
}

type Suggestion struct {
	Email string
	Name  string
}
