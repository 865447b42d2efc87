package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "lexjobs_access_token"
)
