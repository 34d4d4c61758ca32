package models

import "time"

// SeedCards returns the sample cards shown on a fresh install.
func SeedCards() []*Card {
	now := time.Now().UnixMilli()

	return []*Card{
		{
			ID:        "seed-1",
			Name:      "김철수",
			Company:   "테크 솔루션",
			Title:     "수석 개발자",
			Mobile:    "010-1234-5678",
			Tel:       "02-555-1234",
			Email:     "chulsoo@techsol.com",
			Website:   "www.techsol.com",
			Address:   "서울시 강남구 테헤란로 123",
			Group:     GroupWork,
			CreatedAt: now - 10000000,
		},
		{
			ID:        "seed-2",
			Name:      "이영희",
			Company:   "크리에이티브 디자인",
			Title:     "아트 디렉터",
			Mobile:    "010-9876-5432",
			Email:     "yh.lee@creative.kr",
			Website:   "www.creative.kr",
			Address:   "서울시 마포구 홍대입구 456",
			Group:     GroupOther,
			CreatedAt: now - 5000000,
		},
		{
			ID:        "seed-3",
			Name:      "박지성",
			Company:   "미래 금융",
			Title:     "자산 관리사",
			Mobile:    "010-5555-7777",
			Email:     "jpark@futurefin.com",
			Website:   "www.futurefin.com",
			Address:   "서울시 여의도 금융로 789",
			Group:     GroupFriend,
			CreatedAt: now - 2000000,
		},
	}
}
