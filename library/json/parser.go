package json

// reject 记录原因，之后所有 Feed 都返回 false
func (c *Checker) reject(err error) bool {
	c.err = err
	return false
}

// Feed 喂入一个字符，返回校验器是否仍然合法
// 负数表示输入提前结束，按非法字符处理
func (c *Checker) Feed(ch int) bool {
	if c.err != nil {
		return false
	}

	class := classify(ch)
	if class == classInvalid {
		return c.reject(ErrInvalidChar)
	}

	t := lookup(c.state, class)
	switch t.kind {
	case kindShift:
		c.state = t.next
	case kindAction:
		if err := c.perform(t.act); err != nil {
			return c.reject(err)
		}
	default:
		return c.reject(ErrUnexpectedChar)
	}
	c.offset++
	return true
}

// perform 执行结构动作，修改嵌套栈与状态
func (c *Checker) perform(a action) error {
	switch a {
	case actCloseEmptyObject:
		if !c.modes.PopExpect(modeKey) {
			return ErrMismatch
		}
		c.state = stateOK
	case actCloseObject:
		if !c.modes.PopExpect(modeObject) {
			return ErrMismatch
		}
		c.state = stateOK
	case actCloseArray:
		if !c.modes.PopExpect(modeArray) {
			return ErrMismatch
		}
		c.state = stateOK
	case actOpenObject:
		if !c.modes.Push(modeKey) {
			return ErrTooDeep
		}
		c.state = stateObject
	case actOpenArray:
		if !c.modes.Push(modeArray) {
			return ErrTooDeep
		}
		c.state = stateArray
	case actEndString:
		top, _ := c.modes.Top()
		switch top {
		case modeKey:
			c.state = stateColon
		case modeArray, modeObject:
			c.state = stateOK
		default:
			return ErrMismatch
		}
	case actComma:
		top, _ := c.modes.Top()
		switch top {
		case modeObject:
			// 逗号让对象从 object 模式翻转回 key 模式
			if !c.modes.PopExpect(modeObject) || !c.modes.Push(modeKey) {
				return ErrMismatch
			}
			c.state = stateKey
		case modeArray:
			c.state = stateValue
		default:
			return ErrMismatch
		}
	case actColon:
		// 冒号让对象从 key 模式翻转到 object 模式
		if !c.modes.PopExpect(modeKey) || !c.modes.Push(modeObject) {
			return ErrMismatch
		}
		c.state = stateValue
	default:
		return ErrUnexpectedChar
	}
	return nil
}

// IsComplete 输入是否构成完整的 JSON 文本：
// 状态为 ok，且栈中只剩栈底哨兵
func (c *Checker) IsComplete() bool {
	if c.err != nil || c.state != stateOK || c.modes.Size() != 1 {
		return false
	}
	bottom, _ := c.modes.Bottom()
	return bottom == modeDone
}
