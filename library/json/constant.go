package json

// DefaultMaxDepth 默认最大嵌套层数
const DefaultMaxDepth = 20

// charClass 输入字符类别，用于压缩状态转移表的列数
type charClass uint8

const (
	classSpace charClass = iota // space
	classWhite                  // \t \n \r
	classLCurB                  // {
	classRCurB                  // }
	classLSqrB                  // [
	classRSqrB                  // ]
	classColon                  // :
	classComma                  // ,
	classQuote                  // "
	classBacks                  // \
	classSlash                  // /
	classPlus                   // +
	classMinus                  // -
	classPoint                  // .
	classZero                   // 0
	classDigit                  // 123456789
	classLowA                   // a
	classLowB                   // b
	classLowC                   // c
	classLowD                   // d
	classLowE                   // e
	classLowF                   // f
	classLowL                   // l
	classLowN                   // n
	classLowR                   // r
	classLowS                   // s
	classLowT                   // t
	classLowU                   // u
	classABCDF                  // ABCDF
	classE                      // E
	classEtc                    // 其他字符
	numClasses

	classInvalid charClass = 0xff // 控制字符
)

// state 自动机所处的词法位置
type state uint8

const (
	stateStart    state = iota // 开始
	stateOK                    // 一个值结束
	stateObject                // 对象开始
	stateKey                   // 等待 key
	stateColon                 // 等待冒号
	stateValue                 // 等待值
	stateArray                 // 数组开始
	stateString                // 字符串中
	stateEscape                // 转义
	stateU1                    // \u 第 1 位
	stateU2                    // \u 第 2 位
	stateU3                    // \u 第 3 位
	stateU4                    // \u 第 4 位
	stateMinus                 // 负号
	stateZero                  // 0
	stateInt                   // 整数部分
	stateFrac                  // 小数点
	stateFracDigits            // 小数部分
	stateE1                    // e
	stateE2                    // e 后的符号
	stateE3                    // 指数部分
	stateT1                    // t
	stateT2                    // tr
	stateT3                    // tru
	stateF1                    // f
	stateF2                    // fa
	stateF3                    // fal
	stateF4                    // fals
	stateN1                    // n
	stateN2                    // nu
	stateN3                    // nul
	numStates
)

// action 状态转移表无法表达的结构动作
type action uint8

const (
	actNone             action = iota
	actCloseEmptyObject        // } 紧跟 {
	actCloseObject             // }
	actCloseArray              // ]
	actOpenObject              // {
	actOpenArray               // [
	actEndString               // 结束的 "
	actComma                   // ,
	actColon                   // :
)

// mode 压入嵌套栈的上下文
type mode uint8

const (
	modeArray  mode = iota // 数组中
	modeDone               // 栈底哨兵，文档结束
	modeKey                // 对象中，等待 key
	modeObject             // 对象中，已读完 key
)

var stateNames = [numStates]string{
	"start", "ok", "object", "key", "colon", "value", "array", "string", "escape",
	"u1", "u2", "u3", "u4", "minus", "zero", "int", "frac", "frac-digits", "e", "ex", "exp",
	"t", "tr", "tru", "f", "fa", "fal", "fals", "n", "nu", "nul",
}

func (s state) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return "state(?)"
}
