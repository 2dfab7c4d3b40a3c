// Package lists aggregates and manages Mastodon lists for the signed-in
// account: which lists exist, which followed accounts sit on which lists,
// and membership changes.
package lists

import "github.com/mattn/go-mastodon"

// List is one of the account's Mastodon lists.
type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Follower is a followed account annotated with the lists it belongs to.
// IDs are strings throughout: instance IDs are 64-bit integers that lose
// precision in JavaScript number types.
type Follower struct {
	ID          string   `json:"id"`
	Lists       []string `json:"lists"`
	DisplayName string   `json:"display_name"`
	Username    string   `json:"username"`
	Acct        string   `json:"acct"`
	Note        string   `json:"note"`
	Avatar      string   `json:"avatar"`
}

// Me describes the signed-in account as shown in the app header.
type Me struct {
	Username    string `json:"username"`
	Acct        string `json:"acct"`
	DisplayName string `json:"display_name"`
}

// Directory is the full payload the manager view renders: every list, every
// followed account with its list memberships, and the owning account.
type Directory struct {
	Lists     []List     `json:"lists"`
	Followers []Follower `json:"followers"`
	Me        Me         `json:"me"`
}

func newList(l *mastodon.List) List {
	return List{
		ID:    string(l.ID),
		Title: l.Title,
	}
}

func newFollower(a *mastodon.Account) Follower {
	return Follower{
		ID:          string(a.ID),
		Lists:       []string{},
		DisplayName: a.DisplayName,
		Username:    a.Username,
		Acct:        a.Acct,
		Note:        a.Note,
		Avatar:      a.Avatar,
	}
}
