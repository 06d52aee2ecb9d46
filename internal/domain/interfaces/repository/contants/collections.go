package repocontants

const (
	STYLE_PROFILE_COLLECTION = "StyleProfiles"
	CHAT_SESSION_COLLECTION  = "ChatSessions"
)
