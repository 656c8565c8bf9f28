package cache

import (
	"time"
)

// DailyResetHour はキャッシュを切り替える時刻（日本時間）です。
const DailyResetHour = 8

// jst は日本時間です。zoneinfoが無い環境では固定オフセットを使います。
var jst = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}()

// TimeUntilNextDailyReset は now から次の hour 時（loc）までの期間を返します。
// ちょうどその時刻の場合は翌日までの24時間を返します。
func TimeUntilNextDailyReset(now time.Time, hour int, loc *time.Location) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// TimeUntilNext8AM は次の午前8時（日本時間）までの期間を返します。
func TimeUntilNext8AM() time.Duration {
	return TimeUntilNextDailyReset(time.Now(), DailyResetHour, jst)
}
