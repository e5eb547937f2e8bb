package models

// PostView is the fully assembled, viewer-specific representation of a post.
// Field names follow the JSON contract the feed client consumes.
type PostView struct {
	ID       string        `json:"id"`
	UserID   string        `json:"userId"`
	Author   string        `json:"author"`
	Initials string        `json:"initials"`
	Age      int           `json:"age"`
	Type     string        `json:"type"`
	Text     string        `json:"text"`
	Media    []MediaView   `json:"media"`
	Likes    int           `json:"likes"`
	Liked    bool          `json:"liked"`
	Time     string        `json:"time"`
	Comments []CommentView `json:"comments"`
	Poll     *PollView     `json:"poll"`
}

// MediaView is a media attachment as rendered in a PostView.
type MediaView struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// CommentView is a comment with the viewer's liked flag resolved.
type CommentView struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Author   string `json:"author"`
	Initials string `json:"initials"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	Likes    int    `json:"likes"`
	Liked    bool   `json:"liked"`
	Time     string `json:"time"`
}

// PollView carries tallies, percentages and the viewer's own vote.
type PollView struct {
	ID         string           `json:"id"`
	Question   string           `json:"question"`
	Options    []PollOptionView `json:"options"`
	TotalVotes int              `json:"totalVotes"`
	UserVote   *string          `json:"userVote"`
}

// PollOptionView is one option's tally. Percentage is round-half-up of
// votes/totalVotes*100, or 0 when the poll has no votes yet.
type PollOptionView struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

// LikeResult is the response to a like toggle on a post or comment.
type LikeResult struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// NotificationView is a notification with its humanized time label.
type NotificationView struct {
	ID        uint    `json:"id"`
	Type      string  `json:"type"`
	ActorID   string  `json:"actorId"`
	ActorName string  `json:"actorName"`
	PostID    *string `json:"postId"`
	CommentID *string `json:"commentId"`
	Message   string  `json:"message"`
	Read      bool    `json:"read"`
	Time      string  `json:"time"`
}
