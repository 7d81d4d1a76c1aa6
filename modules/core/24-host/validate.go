package host

import (
	"fmt"
	"regexp"
)

const (
	defaultMinIDLength = 9
	defaultMaxIDLength = 64
)

var isAlphaNumeric = regexp.MustCompile(`^[a-zA-Z0-9\.\_\+\-\#\[\]\<\>]+$`).MatchString

// ClientIdentifierValidator validates a client identifier, e.g.
// "07-tendermint-0": it checks the ICS-24 length bounds and allowed
// characters only; the "{client-type}-{sequence}" form is not checked.
func ClientIdentifierValidator(id string) error {
	return defaultIdentifierValidator(id)
}

// ConnectionIdentifierValidator validates a connection identifier.
func ConnectionIdentifierValidator(id string) error {
	return defaultIdentifierValidator(id)
}

// ChannelIdentifierValidator validates a channel identifier.
func ChannelIdentifierValidator(id string) error {
	return defaultIdentifierValidator(id)
}

// PortIdentifierValidator validates a port identifier.
func PortIdentifierValidator(id string) error {
	return defaultIdentifierValidator(id)
}

func defaultIdentifierValidator(id string) error {
	if strlen := len(id); strlen < defaultMinIDLength || strlen > defaultMaxIDLength {
		return fmt.Errorf("identifier %s has invalid length: %d, must be between %d-%d characters", id, strlen, defaultMinIDLength, defaultMaxIDLength)
	}
	if !isAlphaNumeric(id) {
		return fmt.Errorf("identifier %s must contain only alphanumeric or the following characters: '.', '_', '+', '-', '#', '[', ']', '<', '>'", id)
	}
	return nil
}
