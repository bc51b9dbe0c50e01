package image

import "math/rand"

// 庫存圖片池，外部圖片生成不可用時的保底來源
var stockImages = []string{
	"https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
	"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445",
	"https://images.unsplash.com/photo-1565958011703-44f9829ba187",
	"https://images.unsplash.com/photo-1482049016688-2d3e1b311543",
	"https://images.unsplash.com/photo-1540189549336-e6e99c3679fe",
	"https://images.unsplash.com/photo-1567620832903-9fc6debc209f",
	"https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
	"https://images.unsplash.com/photo-1493770348161-369560ae357d",
}

// randomStock 從圖片池隨機挑一張
func randomStock(rng *rand.Rand) string {
	return stockImages[rng.Intn(len(stockImages))]
}
