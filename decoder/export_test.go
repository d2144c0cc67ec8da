package decoder

// bridge to unexported internals for the external test package
var RankCandidates = rankCandidates
