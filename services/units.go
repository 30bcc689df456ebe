package services

// หน่วยแบ่งเป็น 3 ตระกูล: น้ำหนัก ปริมาตร และจำนวนชิ้น
// factor คือตัวคูณเทียบกับหน่วยฐานของตระกูล (G, ML, piece)
const (
	familyMass   = "mass"
	familyVolume = "volume"
	familyCount  = "count"
)

type unitDef struct {
	family string
	factor float64
}

var units = map[string]unitDef{
	"KG":   {familyMass, 1000},
	"G":    {familyMass, 1},
	"gram": {familyMass, 1},

	"L":   {familyVolume, 1000},
	"ML":  {familyVolume, 1},
	"M/L": {familyVolume, 1},
	"M-L": {familyVolume, 1},

	"piece": {familyCount, 1},
}

// ConvertUnit แปลง quantity จากหน่วย from ไปหน่วย to
// ถ้าอยู่คนละตระกูล (เช่น piece กับ KG) หรือหน่วยไม่รู้จัก จะคืนค่าเดิมเฉย ๆ
// — เป็น behavior เดิมของระบบ ห้ามแก้ตรงนี้ ให้ไปคุมที่ตอนสร้างสูตรแทน
// (STRICT_UNITS + SameFamily)
func ConvertUnit(quantity float64, from, to string) float64 {
	if from == to {
		return quantity
	}
	f, okFrom := units[from]
	t, okTo := units[to]
	if !okFrom || !okTo || f.family != t.family {
		return quantity
	}
	return quantity * f.factor / t.factor
}

// SameFamily รายงานว่าสองหน่วยแปลงหากันได้จริงไหม
// ใช้ตอน validate สูตร ไม่ใช่ตอนคิดออเดอร์
func SameFamily(a, b string) bool {
	if a == b {
		return true
	}
	ua, okA := units[a]
	ub, okB := units[b]
	return okA && okB && ua.family == ub.family
}

// KnownUnit รายงานว่า label นี้อยู่ในชุดหน่วยที่ระบบรองรับ
func KnownUnit(u string) bool {
	_, ok := units[u]
	return ok
}
