package richtextify

// CountText 计算样式文本的可见长度（UTF-16 code units）
//
// 结构标记不计入长度；附件（图片、视频、分隔线）各占一个对象替换字符。
//
// 参数：
//   - text: 要计数的样式文本
//
// 返回：
//   - int: UTF-16 code units 数量
func CountText(text Text) int {
	return StripMarkers(text).UTF16Len()
}
