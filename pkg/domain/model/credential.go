package model

// SlackToken is a user's Slack OAuth access token. The logger redacts values of this type.
type SlackToken string

// ConsentToken proves the user granted the skill a device permission. The logger
// redacts values of this type.
type ConsentToken string
