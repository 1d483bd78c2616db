package maths

import "errors"

// ErrInvalidArgument 求解参数非法（函数为空、容差非正或迭代次数为负）
var ErrInvalidArgument = errors.New("maths: invalid argument")
