package domain

// MaxNameLength is the longest user name accepted, in runes.
const MaxNameLength = 255

// User is a person in the social graph. FriendIDs references other users by
// id; references are not checked on write and may dangle.
type User struct {
	ID        string
	Name      *string
	FriendIDs []string
}

// UserField names a user attribute that can be requested from storage.
type UserField string

const (
	UserFieldID      UserField = "id"
	UserFieldName    UserField = "name"
	UserFieldFriends UserField = "friends"
)

// ParseUserField maps a GraphQL field name onto a UserField.
func ParseUserField(name string) (UserField, bool) {
	switch f := UserField(name); f {
	case UserFieldID, UserFieldName, UserFieldFriends:
		return f, true
	default:
		return "", false
	}
}

// NameOrEmpty returns the user's name, or "" when unset.
func (u *User) NameOrEmpty() string {
	if u.Name == nil {
		return ""
	}
	return *u.Name
}
