package redisrepo

import "fmt"

const (
	USER_KEY = "user:%s" // <userID>
)

func UserKey(userID string) string {
	return fmt.Sprintf(USER_KEY, userID)
}
