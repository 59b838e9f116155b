package messages

import "time"

// tipRotationWindow is how long one tip stays up before rotating.
const tipRotationWindow = 6 * time.Hour

var rotatingTips = []string{
	"Tailor the first three lines of your resume to each posting; that's all most screeners read.",
	"Follow up on applications after a week of silence. Persistence reads as interest, not desperation.",
	"Track every application the day you send it. Memory is a bad pipeline manager.",
	"Practice answering 'tell me about yourself' out loud. It's the one question you will always get.",
	"Two or three quality applications beat ten rushed ones.",
	"Reach out to one person at a target company before applying. Referrals move queues.",
	"After each interview, write down the questions you were asked while you still remember them.",
	"Keep one measurable win per past role ready to quote. Numbers carry stories.",
}

// rotatingTip deterministically selects a tip from the fixed list. The tip
// changes every rotation window without any persisted state.
func rotatingTip(now time.Time) string {
	bucket := now.Unix() / int64(tipRotationWindow/time.Second)
	return rotatingTips[int(bucket%int64(len(rotatingTips)))]
}
