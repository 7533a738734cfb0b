package service

const (
	// One atomic mintPlotsBatch transaction covers at most this many plots;
	// larger requests are split into consecutive chunks.
	mintChunkSize = 50

	// Fan-out width for independent ledger reads.
	defaultWorkerCount = 8

	// A scan whose skip ratio exceeds this logs a warning: the snapshot is
	// likely badly degraded rather than just racing a mint.
	skipWarnRatio = 0.2
)
