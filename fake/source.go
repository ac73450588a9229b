// Package fake generates random raw transaction rows for demos and
// benchmarks. The rows deliberately mimic the messiness of real input: mixed
// field naming, minguo dates, missing unit prices, the occasional zero
// coordinate.
package fake

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

// Source is a redk.Source which generates fake transaction rows.
type Source struct {
	mu    sync.Mutex
	rng   *rand.Rand
	count int
	max   int
}

// NewSource creates a new Source producing max rows with the given random
// seed. Using the same seed gives the same series of rows on a given version
// of Go.
func NewSource(seed int64, max int) *Source {
	return &Source{
		rng: rand.New(rand.NewSource(seed)),
		max: max,
	}
}

var buildingTypes = []string{"住宅大樓", "公寓", "透天厝", "華廈", "套房"}

// Record implements redk.Source and returns a randomly generated raw row.
func (s *Source) Record() (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count >= s.max {
		return nil, io.EOF
	}
	s.count++

	row := map[string]interface{}{
		"latitude":  24.9 + s.rng.Float64()*0.3,
		"longitude": 121.4 + s.rng.Float64()*0.3,
		"交易年月日":     fmt.Sprintf("%d年%02d月%02d日", 100+s.rng.Intn(15), 1+s.rng.Intn(12), 1+s.rng.Intn(28)),
		"建物型態":      buildingTypes[s.rng.Intn(len(buildingTypes))],
		"土地區段位置建物區段門牌": fmt.Sprintf("臺北市測試區測試路%d號", 1+s.rng.Intn(300)),
	}
	area := 20 + s.rng.Float64()*100
	price := float64(50000 + s.rng.Intn(3000000))
	// a tenth of the rows carry only a total price, exercising derivation
	if s.rng.Intn(10) == 0 {
		row["總價元"] = fmt.Sprintf("%.0f", price*area)
		row["建物移轉總面積平方公尺"] = fmt.Sprintf("%.1f", area)
	} else {
		row["單價元平方公尺"] = fmt.Sprintf("%.0f", price)
		row["建物移轉總面積平方公尺"] = fmt.Sprintf("%.1f", area)
	}
	// and a twentieth have the broken zero coordinates real exports do
	if s.rng.Intn(20) == 0 {
		row["latitude"] = 0.0
		row["longitude"] = 0.0
	}
	return row, nil
}
