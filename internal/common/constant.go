package common

// AccessTokenHeaderName is the HTTP header used to carry the access token on
// outbound requests.
const AccessTokenHeaderName = "Authorization"

// ChangeChannelName is the Postgres NOTIFY channel all watched tables emit on.
const ChangeChannelName = "loveos_changes"

// Watched table names. The change feed and the client subscription filter
// both use these values.
const (
	TableMoods     = "moods"
	TablePhotos    = "photos"
	TableLetters   = "letters"
	TableQuestions = "questions"
	TableAnswers   = "answers"
)
