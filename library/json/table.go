package json

// transitionKind 区分表项含义，零值代表未填写
type transitionKind uint8

const (
	kindUnset  transitionKind = iota
	kindShift                 // 直接进入 next
	kindAction                // 执行 act
	kindReject                // 非法
)

// transition 状态转移表的单元格
type transition struct {
	kind transitionKind
	next state
	act  action
}

func shift(s state) transition { return transition{kind: kindShift, next: s} }
func runAction(a action) transition { return transition{kind: kindAction, act: a} }

// 表中使用的短名
var (
	__ = transition{kind: kindReject}

	gs = shift(stateStart)
	ok = shift(stateOK)
	ob = shift(stateObject)
	ke = shift(stateKey)
	cl = shift(stateColon)
	va = shift(stateValue)
	ar = shift(stateArray)
	st = shift(stateString)
	es = shift(stateEscape)
	u1 = shift(stateU1)
	u2 = shift(stateU2)
	u3 = shift(stateU3)
	u4 = shift(stateU4)
	mi = shift(stateMinus)
	ze = shift(stateZero)
	in = shift(stateInt)
	fr = shift(stateFrac)
	fs = shift(stateFracDigits)
	e1 = shift(stateE1)
	e2 = shift(stateE2)
	e3 = shift(stateE3)
	t1 = shift(stateT1)
	t2 = shift(stateT2)
	t3 = shift(stateT3)
	f1 = shift(stateF1)
	f2 = shift(stateF2)
	f3 = shift(stateF3)
	f4 = shift(stateF4)
	n1 = shift(stateN1)
	n2 = shift(stateN2)
	n3 = shift(stateN3)

	xe = runAction(actCloseEmptyObject)
	xo = runAction(actCloseObject)
	xa = runAction(actCloseArray)
	po = runAction(actOpenObject)
	pa = runAction(actOpenArray)
	qt = runAction(actEndString)
	cm = runAction(actComma)
	co = runAction(actColon)
)

// transitionTable 根据当前状态和字符类别给出下一状态或动作
// 文本被接受的条件：结束时状态为 ok 且栈中只剩 modeDone
var transitionTable = [numStates][numClasses]transition{
	/*
	                          white                                      1-9                                   ABCDF  etc
	                      space |  {  }  [  ]  :  ,  "  \  /  +  -  .  0  |  a  b  c  d  e  f  l  n  r  s  t  u  |  E  | */
	stateStart:      {gs, gs, po, __, pa, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateOK:         {ok, ok, __, xo, __, xa, __, cm, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateObject:     {ob, ob, __, xe, __, __, __, __, st, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateKey:        {ke, ke, __, __, __, __, __, __, st, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateColon:      {cl, cl, __, __, __, __, co, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateValue:      {va, va, po, __, pa, __, __, __, st, __, __, __, mi, __, ze, in, __, __, __, __, __, f1, __, n1, __, __, t1, __, __, __, __},
	stateArray:      {ar, ar, po, __, pa, xa, __, __, st, __, __, __, mi, __, ze, in, __, __, __, __, __, f1, __, n1, __, __, t1, __, __, __, __},
	stateString:     {st, __, st, st, st, st, st, st, qt, es, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st},
	stateEscape:     {__, __, __, __, __, __, __, __, st, st, st, __, __, __, __, __, __, st, __, __, __, st, __, st, st, __, st, u1, __, __, __},
	stateU1:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, u2, u2, u2, u2, u2, u2, u2, u2, __, __, __, __, __, __, u2, u2, __},
	stateU2:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, u3, u3, u3, u3, u3, u3, u3, u3, __, __, __, __, __, __, u3, u3, __},
	stateU3:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, u4, u4, u4, u4, u4, u4, u4, u4, __, __, __, __, __, __, u4, u4, __},
	stateU4:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, st, st, st, st, st, st, st, st, __, __, __, __, __, __, st, st, __},
	stateMinus:      {__, __, __, __, __, __, __, __, __, __, __, __, __, __, ze, in, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateZero:       {ok, ok, __, xo, __, xa, __, cm, __, __, __, __, __, fr, __, __, __, __, __, __, e1, __, __, __, __, __, __, __, __, e1, __},
	stateInt:        {ok, ok, __, xo, __, xa, __, cm, __, __, __, __, __, fr, in, in, __, __, __, __, e1, __, __, __, __, __, __, __, __, e1, __},
	stateFrac:       {__, __, __, __, __, __, __, __, __, __, __, __, __, __, fs, fs, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateFracDigits: {ok, ok, __, xo, __, xa, __, cm, __, __, __, __, __, __, fs, fs, __, __, __, __, e1, __, __, __, __, __, __, __, __, e1, __},
	stateE1:         {__, __, __, __, __, __, __, __, __, __, __, e2, e2, __, e3, e3, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateE2:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, e3, e3, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateE3:         {ok, ok, __, xo, __, xa, __, cm, __, __, __, __, __, __, e3, e3, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateT1:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, t2, __, __, __, __, __, __},
	stateT2:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, t3, __, __, __},
	stateT3:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, ok, __, __, __, __, __, __, __, __, __, __},
	stateF1:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, f2, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	stateF2:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, f3, __, __, __, __, __, __, __, __},
	stateF3:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, f4, __, __, __, __, __},
	stateF4:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, ok, __, __, __, __, __, __, __, __, __, __},
	stateN1:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, n2, __, __, __},
	stateN2:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, n3, __, __, __, __, __, __, __, __},
	stateN3:         {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, ok, __, __, __, __, __, __, __, __},
}

// lookup 查表，未填写的表项按非法处理
func lookup(s state, c charClass) transition {
	if s >= numStates || c >= numClasses {
		return __
	}
	t := transitionTable[s][c]
	if t.kind == kindUnset {
		return __
	}
	return t
}
