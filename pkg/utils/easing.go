package utils

import "github.com/fogleman/ease"

// Easing Functions (缓动函数)
//
// 缓动曲线由 github.com/fogleman/ease 提供，这里只做输入截断，
// 保证进度值 t ∈ [0, 1]。

// EaseInOutQuad 二次方缓入缓出
// 特点：开始慢，中间快，结束慢（用于信封悬停高亮）
func EaseInOutQuad(t float64) float64 {
	return ease.InOutQuad(Clamp01(t))
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Approach 让 current 以不超过 step 的步长逼近 target，不会越过 target
func Approach(current, target, step float64) float64 {
	if current < target {
		current += step
		if current > target {
			current = target
		}
	} else if current > target {
		current -= step
		if current < target {
			current = target
		}
	}
	return current
}
