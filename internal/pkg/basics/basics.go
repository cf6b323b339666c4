// Package basics 收集若干与业务无关的小工具函数。
package basics

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval 区间起点必须小于终点
var ErrInvalidInterval = errors.New("invalid interval")

func IsNegative(n int) bool {
	return n < 0
}

// Duplicate 返回 s 重复两次的结果
func Duplicate(s string) string {
	return s + s
}

// Interval 左闭右开区间 [Start, End)
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, end int) (Interval, error) {
	if start >= end {
		return Interval{}, fmt.Errorf("%w: start %d must be less than end %d", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// IsAdjacent 两个区间首尾相接，重叠或包含都不算
func IsAdjacent(a, b Interval) bool {
	if a == b {
		return false
	}
	return a.End == b.Start || a.Start == b.End
}
