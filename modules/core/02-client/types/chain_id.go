package types

import (
	"fmt"
	"strconv"
	"strings"
)

// IsRevisionFormat checks if a chainID is in the format required for
// parsing revisions, i.e. '{chainID}-{revision_number}'.
func IsRevisionFormat(chainID string) bool {
	if !strings.Contains(chainID, "-") {
		return false
	}
	splitStr := strings.Split(chainID, "-")
	revisionNumber := splitStr[len(splitStr)-1]
	if len(revisionNumber) == 0 {
		return false
	}
	if revisionNumber[0] == '0' && len(revisionNumber) > 1 {
		return false
	}
	_, err := strconv.ParseUint(revisionNumber, 10, 64)
	return err == nil
}

// ParseChainID parses a chain ID in the format '{chainID}-{revision_number}'
// and returns the revision number. If the chain ID is not in the
// revision format, the revision number is 0.
func ParseChainID(chainID string) uint64 {
	if !IsRevisionFormat(chainID) {
		return 0
	}
	splitStr := strings.Split(chainID, "-")
	revisionNumber, err := strconv.ParseUint(splitStr[len(splitStr)-1], 10, 64)
	if err != nil {
		return 0
	}
	return revisionNumber
}

// SetRevisionNumber attempts to set a new revision number to the
// chainID by replacing its last component, returning an error if the
// chainID is not in the revision format.
func SetRevisionNumber(chainID string, revision uint64) (string, error) {
	if !IsRevisionFormat(chainID) {
		return "", fmt.Errorf("chainID is not in revision format: %s", chainID)
	}
	splitStr := strings.Split(chainID, "-")
	splitStr[len(splitStr)-1] = strconv.FormatUint(revision, 10)
	return strings.Join(splitStr, "-"), nil
}
