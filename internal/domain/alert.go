package domain

import "fmt"

// Alert is raised when today's price for a category sits below the
// configured fraction of its historical mean.
type Alert struct {
	Item       Category `json:"item"`
	TodayPrice int      `json:"today_price"`
	Mean       float64  `json:"mean"`
}

// Message renders the single alert line sent to subscribers.
func (a Alert) Message() string {
	return fmt.Sprintf("🦀 %s 오늘 최저가 %d원 (평균 %d원) ⬇ 저렴!", a.Item, a.TodayPrice, int(a.Mean))
}
