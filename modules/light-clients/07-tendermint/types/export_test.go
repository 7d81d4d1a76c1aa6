package types

// CheckHeaderMonotonicity exposes the unexported checkHeaderMonotonicity
// to the types_test package, the same export-for-testing idiom ibc-go
// uses throughout its light-client packages.
var CheckHeaderMonotonicity = checkHeaderMonotonicity
