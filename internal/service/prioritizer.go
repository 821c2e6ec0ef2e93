// internal/service/prioritizer.go
package service

import (
	"math"
	"time"
)

// errorRatePercent は表示用の誤答率（パーセント、小数1桁丸め）を返します。
// 未出題 (total == 0) は 0.0 とします。
func errorRatePercent(total, correct int64) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(total-correct)/float64(total)*1000) / 10
}

// priorityScore は整列用の誤答率スコアを返します。
// 未出題は -1 として、降順整列で本当の 0% よりも後ろに並びます。
func priorityScore(total, correct int64) float64 {
	if total == 0 {
		return -1
	}
	return float64(total-correct) / float64(total)
}

// priorityLess は出題優先度の比較関数です。
//  1. 誤答率スコアの降順（未出題 = -1 は最後）
//  2. 挑戦回数の降順
//  3. 追加日時の昇順
func priorityLess(totalI, correctI int64, addedI time.Time, totalJ, correctJ int64, addedJ time.Time) bool {
	scoreI := priorityScore(totalI, correctI)
	scoreJ := priorityScore(totalJ, correctJ)
	if scoreI != scoreJ {
		return scoreI > scoreJ
	}
	if totalI != totalJ {
		return totalI > totalJ
	}
	return addedI.Before(addedJ)
}
