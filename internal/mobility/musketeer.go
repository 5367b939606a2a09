package mobility

var MusketeerLeopard Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return (xd == 1 || xd == 2) && (yd == 1 || yd == 2)
})

var MusketeerHawk Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return (xd == 0 && (yd == 2 || yd == 3)) ||
		(yd == 0 && (xd == 2 || xd == 3)) ||
		(xd == yd && (xd == 2 || xd == 3))
})

var MusketeerElephant Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return xd == 1 || yd == 1 || (xd == 2 && (yd == 0 || yd == 2)) || (xd == 0 && yd == 2)
})

var MusketeerCannon Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return xd < 3 && (yd < 2 || (yd == 2 && xd == 0))
})

var MusketeerUnicorn Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return Knight.Reaches(x1, y1, x2, y2) || (xd == 1 && yd == 3) || (xd == 3 && yd == 1)
})

// MusketeerDragon moves as a knight or a queen.
var MusketeerDragon Mobility = Amazon

var MusketeerFortress Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return (xd == yd && xd < 4) || (yd == 0 && xd == 2) || (yd == 2 && xd < 2)
})

var MusketeerSpider Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return xd < 3 && yd < 3 && !(xd == 1 && yd == 0) && !(xd == 0 && yd == 1)
})
