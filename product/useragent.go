package product

import (
	"runtime"
	"strings"
)

// BannerTemplate 版本信息模板
const BannerTemplate = "jsoncheck/{version} ({system} {sysArch}) Go/{goVersion}"

// Banner 版本信息字符串，用于 -version 输出和日志
var Banner = strings.NewReplacer(
	"{version}", Version,
	"{system}", runtime.GOOS,
	"{sysArch}", runtime.GOARCH,
	"{goVersion}", runtime.Version(),
).Replace(BannerTemplate)
