package wordclock

// Bucket is the five-minute slice of the hour that picks the minute words.
type Bucket int

const (
	OnHour Bucket = iota
	FivePast
	TenPast
	QuarterPast
	TwentyPast
	FiveToHalf
	Half
	FivePastHalf
	TwentyTo
	QuarterTo
	TenTo
	FiveTo

	// BucketCount is the number of buckets in an hour.
	BucketCount = 12
)

// carryMinute is the first minute whose phrase names the upcoming hour.
const carryMinute = 25

var bucketNames = [BucketCount]string{
	"on the hour",
	"five past",
	"ten past",
	"quarter past",
	"twenty past",
	"five to half",
	"half",
	"five past half",
	"twenty to",
	"quarter to",
	"ten to",
	"five to",
}

func (b Bucket) String() string {
	if b < 0 || b >= BucketCount {
		return "invalid"
	}
	return bucketNames[b]
}

// Segment is the discrete reading of one wall-clock time.
type Segment struct {
	Bucket Bucket

	// Hour is the 12-hour-cycle hour the phrase names, 0 meaning twelve.
	Hour int

	// Remainder is minute % 5, shown on the precision row.
	Remainder int
}

// SegmentOf classifies hour in [0,23] and minute in [0,59]. Values outside
// those ranges are a caller error and produce an unspecified segment.
func SegmentOf(hour, minute int) Segment {
	h := hour % 12
	if minute >= carryMinute {
		h = (h + 1) % 12
	}
	return Segment{
		Bucket:    Bucket(minute / 5),
		Hour:      h,
		Remainder: minute % 5,
	}
}
