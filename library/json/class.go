package json

const xx = classInvalid

// asciiClass 将 128 个 ASCII 字符映射到字符类别
// 非空白的控制字符为非法
var asciiClass = [128]charClass{
	xx, xx, xx, xx, xx, xx, xx, xx,
	xx, classWhite, classWhite, xx, xx, classWhite, xx, xx,
	xx, xx, xx, xx, xx, xx, xx, xx,
	xx, xx, xx, xx, xx, xx, xx, xx,

	classSpace, classEtc, classQuote, classEtc, classEtc, classEtc, classEtc, classEtc,
	classEtc, classEtc, classEtc, classPlus, classComma, classMinus, classPoint, classSlash,
	classZero, classDigit, classDigit, classDigit, classDigit, classDigit, classDigit, classDigit,
	classDigit, classDigit, classColon, classEtc, classEtc, classEtc, classEtc, classEtc,

	classEtc, classABCDF, classABCDF, classABCDF, classABCDF, classE, classABCDF, classEtc,
	classEtc, classEtc, classEtc, classEtc, classEtc, classEtc, classEtc, classEtc,
	classEtc, classEtc, classEtc, classEtc, classEtc, classEtc, classEtc, classEtc,
	classEtc, classEtc, classEtc, classLSqrB, classBacks, classRSqrB, classEtc, classEtc,

	classEtc, classLowA, classLowB, classLowC, classLowD, classLowE, classLowF, classEtc,
	classEtc, classEtc, classEtc, classEtc, classLowL, classEtc, classLowN, classEtc,
	classEtc, classEtc, classLowR, classLowS, classLowT, classLowU, classEtc, classEtc,
	classEtc, classEtc, classEtc, classLCurB, classEtc, classRCurB, classEtc, classEtc,
}

// classify 返回字符类别
// 负数（输入结束标记）和控制字符返回 classInvalid；>= 128 一律视为 classEtc，
// 不做 UTF-8 校验
func classify(c int) charClass {
	if c < 0 {
		return classInvalid
	}
	if c >= len(asciiClass) {
		return classEtc
	}
	return asciiClass[c]
}
